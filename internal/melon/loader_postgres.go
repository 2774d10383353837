package melon

import (
	"database/sql"

	"github.com/lib/pq"
)

const loadMelonsQuery = `
	SELECT "melonId", "commonName", price, "imageUrl", "fleshColor", "rindColor", seedless, tags
	FROM melons
	ORDER BY ord
`

// LoadPostgres reads the whole melons table in one query. It runs once at
// startup; the returned slice becomes the immutable catalog snapshot and the
// database is not consulted again.
func LoadPostgres(db *sql.DB) ([]Melon, error) {
	rows, err := db.Query(loadMelonsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var melons []Melon
	for rows.Next() {
		var m Melon
		var imageURL, fleshColor, rindColor sql.NullString
		var tags []string
		if err := rows.Scan(&m.ID, &m.CommonName, &m.Price, &imageURL, &fleshColor, &rindColor, &m.Seedless, pq.Array(&tags)); err != nil {
			return nil, err
		}
		m.ImageURL = imageURL.String
		m.FleshColor = fleshColor.String
		m.RindColor = rindColor.String
		m.Tags = tags
		melons = append(melons, m)
	}

	return melons, rows.Err()
}
