package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/joblog"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/opportunity"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/search"
)

// Controller defines the session-controller operations the tool surface
// needs. The tools stand in for the original UI event handlers: every
// mutation funnels through the controller's optimistic save-and-reload.
type Controller interface {
	Load(ctx context.Context, userID string) (*search.State, error)

	CreateSearch(ctx context.Context, st *search.State, name string) (*search.JobSearch, error)
	ActivateSearch(ctx context.Context, st *search.State, id string) error
	CloseSearch(ctx context.Context, st *search.State, id string) error
	ReopenSearch(ctx context.Context, st *search.State, id string) error
	DeleteSearch(ctx context.Context, st *search.State, id string) error

	AddOpportunity(ctx context.Context, st *search.State, in search.OpportunityInput) (*opportunity.Opportunity, error)
	UpdateOpportunity(ctx context.Context, st *search.State, id string, patch opportunity.Patch) (*opportunity.Opportunity, error)
	DeleteOpportunity(ctx context.Context, st *search.State, id string) error
	ApplyStatusChange(ctx context.Context, st *search.State, opportunityID string, newStatus opportunity.Status) error

	AddInterview(ctx context.Context, st *search.State, opportunityID string, in search.InterviewInput) (*opportunity.Interview, error)
	UpdateInterview(ctx context.Context, st *search.State, opportunityID, interviewID string, in search.InterviewInput) error
	DeleteInterview(ctx context.Context, st *search.State, opportunityID, interviewID string) error

	AddContact(ctx context.Context, st *search.State, opportunityID string, in search.ContactInput) (*opportunity.Contact, error)
	UpdateContact(ctx context.Context, st *search.State, opportunityID, contactID string, in search.ContactInput) error
	DeleteContact(ctx context.Context, st *search.State, opportunityID, contactID string) error

	AddRecruiter(ctx context.Context, st *search.State, in search.RecruiterInput) (*search.Recruiter, error)
	UpdateRecruiter(ctx context.Context, st *search.State, id string, in search.RecruiterInput) error
	DeleteRecruiter(ctx context.Context, st *search.State, id string) error

	AddResource(ctx context.Context, st *search.State, in search.ResourceInput) (*search.OnlineResource, error)
	UpdateResource(ctx context.Context, st *search.State, id string, in search.ResourceInput) error
	DeleteResource(ctx context.Context, st *search.State, id string) error

	AddLogEntry(ctx context.Context, st *search.State, in joblog.EntryInput) (*joblog.Entry, error)
	UpdateLogEntry(ctx context.Context, st *search.State, id string, in joblog.EntryInput) error
	DeleteLogEntry(ctx context.Context, st *search.State, id string) error

	Opportunities(st *search.State, f opportunity.Filter, mode opportunity.SortMode, page, perPage int) (opportunity.Page, opportunity.Counts, error)
	FilteredOpportunities(st *search.State, f opportunity.Filter, mode opportunity.SortMode) ([]opportunity.Opportunity, error)
	LogEntries(st *search.State, f joblog.Filter, page, perPage int) (joblog.Page, error)
	FilteredLog(st *search.State, f joblog.Filter) ([]joblog.Entry, error)
}

// Config contains server configuration.
type Config struct {
	Controller Controller
	UserID     string
	ExportDir  string
	Logger     *slog.Logger
}

// NewServer loads the user's state and configures an MCP server with all
// tools registered.
func NewServer(ctx context.Context, cfg Config) (*sdkmcp.Server, error) {
	state, err := cfg.Controller.Load(ctx, cfg.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading initial state: %w", err)
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "jobtrail",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	h := &handler{
		svc:       cfg.Controller,
		state:     state,
		exportDir: cfg.ExportDir,
		logger:    cfg.Logger,
	}
	registerTools(server, h)

	return server, nil
}

// handler carries the shared session state behind the tools. The core is
// single-writer by design; the mutex serializes tool calls at the
// transport boundary so the domain layer stays lock-free.
type handler struct {
	mu        sync.Mutex
	svc       Controller
	state     *search.State
	exportDir string
	logger    *slog.Logger
}
