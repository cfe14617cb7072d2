package model

// User represents a personnel record as stored in the `users` table.
// The primary key userId is externally assigned (a personnel number),
// not generated by the database. Supervisor is an informal reference
// to another employee's name; it is not enforced as a foreign key.
//
// Password holds the bcrypt digest of the user's secret. It is never
// serialized to JSON: responses expose every profile field except the
// credential.
type User struct {
	UserID      int64  `json:"userId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
	DateOfBirth string `json:"dateOfBirth"`
	Supervisor  string `json:"supervisor"`
	Password    string `json:"-"` // bcrypt digest, users.password
}
