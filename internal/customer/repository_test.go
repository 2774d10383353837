package customer

import "testing"

func seedCustomers() []Customer {
	return []Customer{
		{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace", Password: "analytical"},
		{Email: "Grace@Example.com", FirstName: "Grace", LastName: "Hopper", Password: "cobol"},
	}
}

func TestExists(t *testing.T) {
	repo := NewInMemoryRepository(seedCustomers())

	if !repo.Exists("ada@example.com") {
		t.Fatalf("expected ada@example.com to exist")
	}
	if repo.Exists("nobody@example.com") {
		t.Fatalf("did not expect nobody@example.com to exist")
	}
	// exact match only, no case folding
	if repo.Exists("grace@example.com") {
		t.Fatalf("lookup must not normalize email case")
	}
}

func TestGetByEmail(t *testing.T) {
	repo := NewInMemoryRepository(seedCustomers())

	c, err := repo.GetByEmail("ada@example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if c.FirstName != "Ada" || c.LastName != "Lovelace" {
		t.Fatalf("unexpected customer %+v", c)
	}

	if _, err := repo.GetByEmail("nobody@example.com"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
