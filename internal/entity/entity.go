package entity

import "time"

type Role int64

const (
	RoleUser Role = iota
	RoleAdmin
	RoleSuperAdmin
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "USER"
	case RoleAdmin:
		return "ADMIN"
	case RoleSuperAdmin:
		return "S_ADMIN"
	default:
		return "UNKNOWN"
	}
}

type Author struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Biography string    `json:"biography"`
	Born      time.Time `json:"born"`
}

type Genre struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Amount is the number of physical copies on the shelf. It is mutated only
// by the lending engine, always together with a loan row in one transaction.
type Book struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PublishYear int64  `json:"publish_year"`
	Amount      int64  `json:"amount"`
}

type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	HashedPassword string    `json:"-"`
	Email          string    `json:"email"`
	RoleID         Role      `json:"role_id"`
	Born           time.Time `json:"born"`
	Verified       bool      `json:"verified"`
	VerifyCode     string    `json:"-"`
}

// Loan is one borrow-return cycle for a (user, book) pair. Unlike the
// author_book and genre_book links it has its own identity: the same pair
// may accumulate many closed loans over time, but at most one with
// Returned == false.
type Loan struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"left_id"`
	BookID       int64      `json:"right_id"`
	GetAt        time.Time  `json:"get_at"`
	MustReturnAt time.Time  `json:"must_return_at"`
	ReturnedAt   *time.Time `json:"returned_at,omitempty"`
	Returned     bool       `json:"returned"`
}
