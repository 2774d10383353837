package customer

import "database/sql"

const loadCustomersQuery = `
	SELECT email, password, "firstName", "lastName"
	FROM customers
	ORDER BY email
`

// LoadPostgres reads the whole customers table once at startup. The returned
// slice becomes the immutable identity snapshot.
func LoadPostgres(db *sql.DB) ([]Customer, error) {
	rows, err := db.Query(loadCustomersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.Email, &c.Password, &c.FirstName, &c.LastName); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}
