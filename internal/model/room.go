package model

type Room struct {
	ID          int    `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	LibraryName string `db:"library_name" json:"library_name"`
	Capacity    int    `db:"capacity" json:"capacity"`
}
