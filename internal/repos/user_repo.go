package repos

import (
	"strings"

	"github.com/jmoiron/sqlx"

	"webshop/internal/domain"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

// ByUsername is a case-sensitive lookup; "Alice" and "alice" are different accounts.
func (r *UserRepo) ByUsername(username string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,username,password FROM users WHERE username=?`, username)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user and returns the assigned id. The unique constraint
// on username is the atomicity boundary for signup; a violation surfaces as
// domain.ErrUsernameTaken regardless of any racing pre-check.
func (r *UserRepo) Create(username, hash string) (int64, error) {
	res, err := r.DB.Exec(`INSERT INTO users(username,password) VALUES(?,?)`, username, hash)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, domain.ErrUsernameTaken
		}
		return 0, err
	}
	return res.LastInsertId()
}
