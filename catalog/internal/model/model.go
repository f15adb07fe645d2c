package model

import (
	"github.com/google/uuid"
)

const (
	PageSize          = 10
	DefaultLanguageID = 1
	HeadTitle         = "Local Library"
)

// DefaultDateOfDeath pre-fills the author create form.
var DefaultDateOfDeath = NewDate(2018, 1, 5)

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
	NumPages      int `json:"numPages"`
}

// NewPaging fills NumPages; an empty listing still has one page.
func NewPaging(page, size, total int) Paging {
	pages := 1
	if size > 0 && total > 0 {
		pages = (total + size - 1) / size
	}
	return Paging{
		Page:          page,
		PageSize:      size,
		TotalElements: total,
		NumPages:      pages,
	}
}

type ListBooks struct {
	Paging
	Items []Book `json:"items"`
}

type ListAuthors struct {
	Paging
	Items []Author `json:"items"`
}

type ListBookInstances struct {
	Paging
	Items []BookInstance `json:"items"`
}

type Language struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Genre struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Author struct {
	ID          int    `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth *Date  `json:"date_of_birth"`
	DateOfDeath *Date  `json:"date_of_death"`
}

func (a Author) String() string {
	return a.LastName + ", " + a.FirstName
}

type AuthorDetail struct {
	Author
	Books []Book `json:"books"`
}

type Book struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	ISBN       string `json:"isbn"`
	AuthorID   *int   `json:"author_id"`
	AuthorName string `json:"author,omitempty"`
	LanguageID *int   `json:"language_id"`
	Language   string `json:"language,omitempty"`
}

type BookDetail struct {
	Book
	Genres    []Genre        `json:"genres"`
	Instances []BookInstance `json:"instances"`
}

type Status string

const (
	StatusMaintenance Status = "m"
	StatusOnLoan      Status = "o"
	StatusAvailable   Status = "a"
	StatusReserved    Status = "r"
)

type BookInstance struct {
	ID         uuid.UUID `json:"id"`
	BookID     int       `json:"book_id"`
	BookTitle  string    `json:"book_title"`
	Imprint    string    `json:"imprint"`
	DueBack    *Date     `json:"due_back"`
	Status     Status    `json:"status"`
	BorrowerID *int      `json:"borrower_id,omitempty"`
	Borrower   string    `json:"borrower,omitempty"`
	IsOverdue  bool      `json:"is_overdue"`
}

// MarkOverdue sets IsOverdue relative to today.
func (bi *BookInstance) MarkOverdue(today Date) {
	bi.IsOverdue = bi.DueBack != nil && bi.DueBack.Before(today)
}

type User struct {
	ID           int      `json:"id"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	IsSuperuser  bool     `json:"is_superuser"`
	Permissions  []string `json:"permissions"`
}

type Stats struct {
	HeadTitle             string `json:"head_title"`
	NumBooks              int    `json:"num_books"`
	NumInstances          int    `json:"num_instances"`
	NumInstancesAvailable int    `json:"num_instances_available"`
	NumAuthors            int    `json:"num_authors"`
	InumGenre             int    `json:"inum_genre"`
	InumBooks             int    `json:"inum_books"`
	NumVisits             int    `json:"num_visits"`
}
