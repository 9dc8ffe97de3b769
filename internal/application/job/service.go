package job

import (
	"context"
	"time"

	"github.com/gestionale/backend/internal/domain/job"
	"github.com/gestionale/backend/internal/domain/partner"
	"github.com/gestionale/backend/internal/domain/quote"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JobService handles job-related business operations
type JobService struct {
	jobRepo    job.Repository
	quoteRepo  quote.Repository
	clientRepo partner.ClientRepository
}

// NewJobService creates a new JobService
func NewJobService(jobRepo job.Repository, quoteRepo quote.Repository, clientRepo partner.ClientRepository) *JobService {
	return &JobService{
		jobRepo:    jobRepo,
		quoteRepo:  quoteRepo,
		clientRepo: clientRepo,
	}
}

// Create validates the form, checks references, and persists a new job.
// Field-level rule violations come back as *shared.ValidationError so the
// HTTP layer can render them per field.
func (s *JobService) Create(ctx context.Context, req CreateJobRequest) (*JobResponse, error) {
	form := toForm(req.Number, req.Description, req.ClientID, req.QuoteID,
		req.TotalAmount, req.DepositPercentage, req.DepositRecipient, req.DepositInvoicedBy,
		req.Advance, req.Status, req.StartDate, req.EndDate, req.Notes)

	if errs := job.ValidateForm(form); !errs.Valid() {
		return nil, shared.NewValidationError(errs)
	}

	exists, err := s.jobRepo.ExistsByNumber(ctx, form.Number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Job with this number already exists")
	}

	if err := s.checkReferences(ctx, form.ClientID, form.QuoteID); err != nil {
		return nil, err
	}

	j, err := job.NewJob(form.ToRecord())
	if err != nil {
		return nil, err
	}

	if err := s.jobRepo.Save(ctx, j); err != nil {
		return nil, err
	}

	response := ToJobResponse(j)
	return &response, nil
}

// Update applies a full-form update to an existing job. The stored deposit
// percentage is kept regardless of what the request carries.
func (s *JobService) Update(ctx context.Context, jobID uuid.UUID, req UpdateJobRequest) (*JobResponse, error) {
	j, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	// The deposit percentage is read-only after creation, so the form is
	// validated against the stored value rather than whatever the request
	// carries for that field.
	form := toForm(j.Number, req.Description, req.ClientID, req.QuoteID,
		req.TotalAmount, j.DepositPercentage, req.DepositRecipient, req.DepositInvoicedBy,
		req.Advance, req.Status, req.StartDate, req.EndDate, req.Notes)

	if errs := job.ValidateForm(form); !errs.Valid() {
		return nil, shared.NewValidationError(errs)
	}

	if err := s.checkReferences(ctx, form.ClientID, form.QuoteID); err != nil {
		return nil, err
	}

	if err := j.ApplyRecord(form.ToRecord()); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Save(ctx, j); err != nil {
		return nil, err
	}

	response := ToJobResponse(j)
	return &response, nil
}

// UpdateStatus changes the job's production status
func (s *JobService) UpdateStatus(ctx context.Context, jobID uuid.UUID, req UpdateJobStatusRequest) (*JobResponse, error) {
	j, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if err := j.SetStatus(job.Status(req.Status)); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Save(ctx, j); err != nil {
		return nil, err
	}

	response := ToJobResponse(j)
	return &response, nil
}

// GetByID retrieves a job by ID
func (s *JobService) GetByID(ctx context.Context, jobID uuid.UUID) (*JobResponse, error) {
	j, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	response := ToJobResponse(j)
	return &response, nil
}

// GetByNumber retrieves a job by its human-assigned number
func (s *JobService) GetByNumber(ctx context.Context, number string) (*JobResponse, error) {
	j, err := s.jobRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	response := ToJobResponse(j)
	return &response, nil
}

// List retrieves jobs with filtering and pagination
func (s *JobService) List(ctx context.Context, filter JobListFilter) ([]JobResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search

	var (
		jobs []*job.Job
		err  error
	)
	if filter.Status != "" {
		jobs, err = s.jobRepo.FindByStatus(ctx, job.Status(filter.Status), domainFilter)
	} else {
		jobs, err = s.jobRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	total, err := s.jobRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToJobResponses(jobs), total, nil
}

// Delete removes a job
func (s *JobService) Delete(ctx context.Context, jobID uuid.UUID) error {
	if _, err := s.jobRepo.FindByID(ctx, jobID); err != nil {
		return err
	}
	return s.jobRepo.Delete(ctx, jobID)
}

// checkReferences verifies that linked client and quote exist, and that a
// linked quote was accepted by the client.
func (s *JobService) checkReferences(ctx context.Context, clientID, quoteID *uuid.UUID) error {
	if clientID != nil {
		if _, err := s.clientRepo.FindByID(ctx, *clientID); err != nil {
			return shared.NewDomainError("INVALID_CLIENT", "Linked client does not exist")
		}
	}
	if quoteID != nil {
		q, err := s.quoteRepo.FindByID(ctx, *quoteID)
		if err != nil {
			return shared.NewDomainError("INVALID_QUOTE", "Linked quote does not exist")
		}
		if !q.IsAccepted() {
			return shared.NewDomainError("QUOTE_NOT_ACCEPTED", "Jobs can only be linked to accepted quotes")
		}
	}
	return nil
}

// toForm assembles a domain form from request fields
func toForm(number, description string, clientID, quoteID *uuid.UUID,
	totalAmount, depositPercentage decimal.Decimal, recipient, invoicedBy string,
	advance AdvanceRequest, status string, startDate, endDate *time.Time, notes string) job.Form {
	return job.Form{
		Number:            number,
		Description:       description,
		ClientID:          clientID,
		QuoteID:           quoteID,
		TotalAmount:       totalAmount,
		DepositPercentage: depositPercentage,
		DepositRecipient:  job.DepositRecipient(recipient),
		DepositInvoicedBy: job.Company(invoicedBy),
		Advance: job.AdvanceForm{
			Enabled: advance.Enabled,
			Amount:  advance.Amount,
			From:    job.Company(advance.From),
			To:      job.Company(advance.To),
		},
		Status:    job.Status(status),
		StartDate: startDate,
		EndDate:   endDate,
		Notes:     notes,
	}
}
