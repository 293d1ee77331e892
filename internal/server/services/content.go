package services

import (
	"context"
	"database/sql"
	"fmt"
	"net/mail"

	"github.com/dkravets/libshelf/internal/common"
	"github.com/dkravets/libshelf/internal/server/models"
	"github.com/dkravets/libshelf/internal/server/repositories/repomanager"
)

// ContentService exposes the independent record stores: book catalog, notice
// board, and contact messages. These are uncoupled leaves with list/create
// semantics only.
type ContentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewContentService constructs a ContentService over the shared repositories.
func NewContentService(db *sql.DB, m repomanager.RepositoryManager) *ContentService {
	return &ContentService{db: db, repomanager: m}
}

// ListBooks returns all catalog records.
func (s *ContentService) ListBooks(ctx context.Context) ([]*models.Book, error) {
	return s.repomanager.Books(s.db).ListAll(ctx)
}

// CreateBook stores a new catalog record.
func (s *ContentService) CreateBook(ctx context.Context, book *models.Book) (*models.Book, error) {
	if book.Title == "" || book.Author == "" {
		return nil, fmt.Errorf("%w: title and author are required", common.ErrValidation)
	}
	return s.repomanager.Books(s.db).Create(ctx, book)
}

// ListNotices returns all notice-board records.
func (s *ContentService) ListNotices(ctx context.Context) ([]*models.Notice, error) {
	return s.repomanager.Notices(s.db).ListAll(ctx)
}

// CreateNotice stores a new notice.
func (s *ContentService) CreateNotice(ctx context.Context, notice *models.Notice) (*models.Notice, error) {
	if notice.Title == "" || notice.Details == "" {
		return nil, fmt.Errorf("%w: title and details are required", common.ErrValidation)
	}
	return s.repomanager.Notices(s.db).Create(ctx, notice)
}

// ListMessages returns all contact-form submissions.
func (s *ContentService) ListMessages(ctx context.Context) ([]*models.Message, error) {
	return s.repomanager.Messages(s.db).ListAll(ctx)
}

// LeaveMessage stores a contact-form submission.
func (s *ContentService) LeaveMessage(ctx context.Context, message *models.Message) (*models.Message, error) {
	if message.Name == "" || message.Message == "" {
		return nil, fmt.Errorf("%w: name and message are required", common.ErrValidation)
	}
	message.Email = NormalizeEmail(message.Email)
	if _, err := mail.ParseAddress(message.Email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", common.ErrValidation)
	}
	return s.repomanager.Messages(s.db).Create(ctx, message)
}
