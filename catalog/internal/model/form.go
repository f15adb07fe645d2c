package model

// BookForm enumerates every editable Book field.
type BookForm struct {
	Title      string `json:"title" form:"title" validate:"required,max=200"`
	AuthorID   *int   `json:"author" form:"author"`
	Summary    string `json:"summary" form:"summary" validate:"max=1000"`
	ISBN       string `json:"isbn" form:"isbn" validate:"omitempty,max=13"`
	LanguageID *int   `json:"language" form:"language"`
	GenreIDs   []int  `json:"genre" form:"genre"`
}

func NewBookForm() BookForm {
	lang := DefaultLanguageID
	return BookForm{LanguageID: &lang}
}

func BookFormFrom(b BookDetail) BookForm {
	f := BookForm{
		Title:      b.Title,
		AuthorID:   b.AuthorID,
		Summary:    b.Summary,
		ISBN:       b.ISBN,
		LanguageID: b.LanguageID,
		GenreIDs:   make([]int, 0, len(b.Genres)),
	}
	for _, g := range b.Genres {
		f.GenreIDs = append(f.GenreIDs, g.ID)
	}
	return f
}

// Normalize maps the zero values an empty form field binds to onto "unset".
func (f *BookForm) Normalize() {
	if f.AuthorID != nil && *f.AuthorID == 0 {
		f.AuthorID = nil
	}
	if f.LanguageID != nil && *f.LanguageID == 0 {
		f.LanguageID = nil
	}
}

// AuthorForm enumerates every editable Author field.
type AuthorForm struct {
	FirstName   string `json:"first_name" form:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" form:"last_name" validate:"required,max=100"`
	DateOfBirth *Date  `json:"date_of_birth" form:"date_of_birth"`
	DateOfDeath *Date  `json:"date_of_death" form:"date_of_death"`
}

func NewAuthorForm() AuthorForm {
	d := DefaultDateOfDeath
	return AuthorForm{DateOfDeath: &d}
}

func AuthorFormFrom(a Author) AuthorForm {
	return AuthorForm{
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		DateOfBirth: a.DateOfBirth,
		DateOfDeath: a.DateOfDeath,
	}
}

func (f *AuthorForm) Normalize() {
	if f.DateOfBirth != nil && f.DateOfBirth.IsZero() {
		f.DateOfBirth = nil
	}
	if f.DateOfDeath != nil && f.DateOfDeath.IsZero() {
		f.DateOfDeath = nil
	}
}

type RenewBookForm struct {
	RenewalDate *Date `json:"renewal_date" form:"renewal_date" validate:"required,notpast,maxweeks=4"`
}

func (f *RenewBookForm) Normalize() {
	if f.RenewalDate != nil && f.RenewalDate.IsZero() {
		f.RenewalDate = nil
	}
}

type LoginForm struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
	Next     string `json:"next" form:"next" query:"next"`
}
