package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/catalog/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	Stats(ctx context.Context) (model.Stats, error)

	ListBooks(ctx context.Context, page int) (model.ListBooks, error)
	GetBook(ctx context.Context, id int) (model.BookDetail, error)
	CreateBook(ctx context.Context, form model.BookForm) (int, error)
	UpdateBook(ctx context.Context, id int, form model.BookForm) error
	DeleteBook(ctx context.Context, id int) error

	ListAuthors(ctx context.Context, page int) (model.ListAuthors, error)
	GetAuthor(ctx context.Context, id int) (model.AuthorDetail, error)
	CreateAuthor(ctx context.Context, form model.AuthorForm) (int, error)
	UpdateAuthor(ctx context.Context, id int, form model.AuthorForm) error
	DeleteAuthor(ctx context.Context, id int) error

	ListBorrowedByUser(ctx context.Context, userID, page int) (model.ListBookInstances, error)
	ListBorrowed(ctx context.Context, page int) (model.ListBookInstances, error)
	GetBookInstance(ctx context.Context, id uuid.UUID) (model.BookInstance, error)
	ProposedRenewalDate() model.Date
	RenewBookInstance(ctx context.Context, id uuid.UUID, dueBack model.Date) error

	Authenticate(ctx context.Context, username, password string) (model.User, error)
}

var _ CatalogService = (*service.Service)(nil)
