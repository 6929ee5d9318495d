package domain

// UserRecord is one row of a folder's user table. Records with an empty ID do
// not participate in identity reconciliation.
type UserRecord struct {
	ID      string
	Email   string
	Phone   string
	Address string
}
