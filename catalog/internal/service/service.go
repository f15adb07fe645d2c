package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	catalogRepo "github.com/Astemirdum/catalog-service/catalog/internal/repository"
)

const (
	// RenewalPeriod is the loan extension proposed by the renewal form.
	RenewalPeriod = 21 // days

	landingGenre       = "poesia"
	landingTitleSubstr = "a"
)

type Service struct {
	log  *zap.Logger
	repo catalogRepo.Repository
	now  func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo catalogRepo.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:  log.Named("service"),
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) today() model.Date {
	return model.Today(s.now())
}

// checkPage rejects pages past the last one; page 1 of an empty listing is fine.
func checkPage(page int, p model.Paging) error {
	if page < 1 || page > p.NumPages {
		return errs.ErrPageNotFound
	}
	return nil
}

func (s *Service) ListBooks(ctx context.Context, page int) (model.ListBooks, error) {
	list, err := s.repo.ListBooks(ctx, page, model.PageSize)
	if err != nil {
		return model.ListBooks{}, err
	}
	if err = checkPage(page, list.Paging); err != nil {
		return model.ListBooks{}, err
	}
	return list, nil
}

func (s *Service) GetBook(ctx context.Context, id int) (model.BookDetail, error) {
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return model.BookDetail{}, err
	}
	today := s.today()
	for i := range book.Instances {
		book.Instances[i].MarkOverdue(today)
	}
	return book, nil
}

func (s *Service) CreateBook(ctx context.Context, form model.BookForm) (int, error) {
	return s.repo.CreateBook(ctx, form)
}

func (s *Service) UpdateBook(ctx context.Context, id int, form model.BookForm) error {
	return s.repo.UpdateBook(ctx, id, form)
}

func (s *Service) DeleteBook(ctx context.Context, id int) error {
	return s.repo.DeleteBook(ctx, id)
}

func (s *Service) ListAuthors(ctx context.Context, page int) (model.ListAuthors, error) {
	list, err := s.repo.ListAuthors(ctx, page, model.PageSize)
	if err != nil {
		return model.ListAuthors{}, err
	}
	if err = checkPage(page, list.Paging); err != nil {
		return model.ListAuthors{}, err
	}
	return list, nil
}

func (s *Service) GetAuthor(ctx context.Context, id int) (model.AuthorDetail, error) {
	return s.repo.GetAuthor(ctx, id)
}

func (s *Service) CreateAuthor(ctx context.Context, form model.AuthorForm) (int, error) {
	return s.repo.CreateAuthor(ctx, form)
}

func (s *Service) UpdateAuthor(ctx context.Context, id int, form model.AuthorForm) error {
	return s.repo.UpdateAuthor(ctx, id, form)
}

func (s *Service) DeleteAuthor(ctx context.Context, id int) error {
	return s.repo.DeleteAuthor(ctx, id)
}

// ListBorrowedByUser lists the copies on loan to one user, soonest due first.
func (s *Service) ListBorrowedByUser(ctx context.Context, userID, page int) (model.ListBookInstances, error) {
	return s.listLoans(ctx, &userID, page)
}

// ListBorrowed lists every copy on loan, soonest due first.
func (s *Service) ListBorrowed(ctx context.Context, page int) (model.ListBookInstances, error) {
	return s.listLoans(ctx, nil, page)
}

func (s *Service) listLoans(ctx context.Context, borrowerID *int, page int) (model.ListBookInstances, error) {
	list, err := s.repo.ListLoans(ctx, borrowerID, page, model.PageSize)
	if err != nil {
		return model.ListBookInstances{}, err
	}
	if err = checkPage(page, list.Paging); err != nil {
		return model.ListBookInstances{}, err
	}
	today := s.today()
	for i := range list.Items {
		list.Items[i].MarkOverdue(today)
	}
	return list, nil
}

func (s *Service) GetBookInstance(ctx context.Context, id uuid.UUID) (model.BookInstance, error) {
	bi, err := s.repo.GetBookInstance(ctx, id)
	if err != nil {
		return model.BookInstance{}, err
	}
	bi.MarkOverdue(s.today())
	return bi, nil
}

// ProposedRenewalDate is the date the renewal form starts with.
func (s *Service) ProposedRenewalDate() model.Date {
	return s.today().AddDays(RenewalPeriod)
}

func (s *Service) RenewBookInstance(ctx context.Context, id uuid.UUID, dueBack model.Date) error {
	if err := s.repo.RenewBookInstance(ctx, id, dueBack); err != nil {
		return err
	}
	s.log.Info("book instance renewed", zap.Stringer("id", id), zap.Stringer("due_back", dueBack))
	return nil
}

// Stats gathers the landing page counts concurrently; NumVisits is left to the caller.
func (s *Service) Stats(ctx context.Context) (model.Stats, error) {
	st := model.Stats{HeadTitle: model.HeadTitle}
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		st.NumBooks, err = s.repo.CountBooks(ctx)
		return err
	})
	gg.Go(func() (err error) {
		st.NumInstances, err = s.repo.CountBookInstances(ctx, "")
		return err
	})
	gg.Go(func() (err error) {
		st.NumInstancesAvailable, err = s.repo.CountBookInstances(ctx, model.StatusAvailable)
		return err
	})
	gg.Go(func() (err error) {
		st.NumAuthors, err = s.repo.CountAuthors(ctx)
		return err
	})
	gg.Go(func() (err error) {
		st.InumGenre, err = s.repo.CountGenresByName(ctx, landingGenre)
		return err
	})
	gg.Go(func() (err error) {
		st.InumBooks, err = s.repo.CountBooksByTitle(ctx, landingTitleSubstr)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.Stats{}, err
	}
	return st, nil
}
