package customer

// Customer represents one registered customer. Email is the primary key.
// Records are immutable after load. Password is stored as loaded — either
// plaintext from legacy data files or a bcrypt hash.
type Customer struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password,omitempty"`
}
