package domain

type User struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Hash     string `db:"password" json:"-"`
}
