package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/joblog"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/opportunity"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/search"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/export"
)

// registerTools wires every tracking operation onto the server. Each tool
// is the programmatic equivalent of one UI event handler.
func registerTools(server *sdkmcp.Server, h *handler) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_search",
		Description: "Start a new job search campaign; it becomes the active search and deactivates all others",
	}, h.createSearch)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_searches",
		Description: "List all job searches, open and archived",
	}, h.listSearches)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "activate_search",
		Description: "Make a search the active one",
	}, h.activateSearch)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "close_search",
		Description: "Soft-close a search, moving it to the archive",
	}, h.closeSearch)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "reopen_search",
		Description: "Restore an archived search to the open list",
	}, h.reopenSearch)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_search",
		Description: "Permanently delete a search and everything it owns",
	}, h.deleteSearch)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_opportunity",
		Description: "Add a job opportunity to the active search",
	}, h.addOpportunity)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_opportunity",
		Description: "Edit an opportunity; a status change stamps the last-changed date and logs an audit entry",
	}, h.updateOpportunity)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_opportunity",
		Description: "Delete an opportunity from the active search",
	}, h.deleteOpportunity)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_status",
		Description: "Quick status change for an opportunity (saved, applied, interview, offer, rejected, closed)",
	}, h.setStatus)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_opportunities",
		Description: "List opportunities with status/fuzzy-text filtering, newest/oldest sort, and pagination",
	}, h.listOpportunities)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_interview",
		Description: "Schedule an interview; the opportunity moves to the interview status",
	}, h.addInterview)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_interview",
		Description: "Edit an interview",
	}, h.updateInterview)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_interview",
		Description: "Delete an interview; removing the last one reverts the opportunity to applied",
	}, h.deleteInterview)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_contact",
		Description: "Attach a contact to an opportunity",
	}, h.addContact)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_contact",
		Description: "Edit a contact",
	}, h.updateContact)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_contact",
		Description: "Delete a contact",
	}, h.deleteContact)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_recruiter",
		Description: "Add a recruiter to the active search",
	}, h.addRecruiter)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_recruiter",
		Description: "Edit a recruiter",
	}, h.updateRecruiter)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_recruiter",
		Description: "Delete a recruiter; log entries keep a placeholder reference",
	}, h.deleteRecruiter)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_resource",
		Description: "Add an online resource (job board, community) to the active search",
	}, h.addResource)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_resource",
		Description: "Edit an online resource",
	}, h.updateResource)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_resource",
		Description: "Delete an online resource",
	}, h.deleteResource)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_log_entry",
		Description: "Append a manual activity log entry (phone_call, email, interview, application, follow_up, other)",
	}, h.addLogEntry)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_log_entry",
		Description: "Edit a log entry",
	}, h.updateLogEntry)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_log_entry",
		Description: "Delete a log entry",
	}, h.deleteLogEntry)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_log",
		Description: "List activity log entries, newest first, with text/date-range filtering and pagination",
	}, h.listLog)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "export_search",
		Description: "Export the currently filtered opportunities as json, csv, table (fixed-width text), or pdf",
	}, h.exportSearch)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "export_log",
		Description: "Export the currently filtered activity log as a plain-text report",
	}, h.exportLog)
}

func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: msg}},
	}
}

func (h *handler) createSearch(ctx context.Context, _ *sdkmcp.CallToolRequest, args createSearchParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	js, err := h.svc.CreateSearch(ctx, h.state, args.Name)
	if err != nil {
		return nil, nil, err
	}
	return nil, summarize(js), nil
}

func (h *handler) listSearches(ctx context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]searchSummary, 0, len(h.state.Searches))
	for _, js := range h.state.Searches {
		out = append(out, summarize(js))
	}
	return nil, out, nil
}

func summarize(js *search.JobSearch) searchSummary {
	return searchSummary{
		ID:            js.ID,
		Name:          js.Name,
		IsActive:      js.IsActive,
		CreatedAt:     js.CreatedAt,
		Closed:        js.Closed,
		ClosedDate:    js.ClosedDate,
		Opportunities: len(js.Opportunities),
	}
}

func (h *handler) activateSearch(ctx context.Context, _ *sdkmcp.CallToolRequest, args searchIDParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.svc.ActivateSearch(ctx, h.state, args.ID); err != nil {
		return nil, nil, err
	}
	return nil, okResult{OK: true}, nil
}

func (h *handler) closeSearch(ctx context.Context, _ *sdkmcp.CallToolRequest, args searchIDParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.svc.CloseSearch(ctx, h.state, args.ID); err != nil {
		return nil, nil, err
	}
	return nil, okResult{OK: true}, nil
}

func (h *handler) reopenSearch(ctx context.Context, _ *sdkmcp.CallToolRequest, args searchIDParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.svc.ReopenSearch(ctx, h.state, args.ID); err != nil {
		return nil, nil, err
	}
	return nil, okResult{OK: true}, nil
}

func (h *handler) deleteSearch(ctx context.Context, _ *sdkmcp.CallToolRequest, args searchIDParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.svc.DeleteSearch(ctx, h.state, args.ID); err != nil {
		return nil, nil, err
	}
	return nil, okResult{OK: true}, nil
}

func (h *handler) addOpportunity(ctx context.Context, _ *sdkmcp.CallToolRequest, args addOpportunityParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	jobSource := args.JobSource
	if args.RecruiterID != "" && h.state.Current != nil {
		if r := h.state.Current.RecruiterByID(args.RecruiterID); r != nil {
			jobSource = search.RecruiterSource(r.Name)
		}
	}
	opp, err := h.svc.AddOpportunity(ctx, h.state, search.OpportunityInput{
		Company:     args.Company,
		Position:    args.Position,
		Status:      opportunity.Status(args.Status),
		Description: args.Description,
		JobURL:      args.JobURL,
		JobSource:   jobSource,
		Salary:      args.Salary,
		Location:    args.Location,
		Notes:       args.Notes,
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, opp, nil
}

func (h *handler) updateOpportunity(ctx context.Context, _ *sdkmcp.CallToolRequest, args updateOpportunityParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	patch := opportunity.Patch{
		Company:     args.Company,
		Position:    args.Position,
		Description: args.Description,
		JobURL:      args.JobURL,
		JobSource:   args.JobSource,
		Salary:      args.Salary,
		Location:    args.Location,
		Notes:       args.Notes,
	}
	if args.Status != nil {
		status := opportunity.Status(*args.Status)
		patch.Status = &status
	}
	opp, err := h.svc.UpdateOpportunity(ctx, h.state, args.ID, patch)
	if err != nil {
		return nil, nil, err
	}
	return nil, opp, nil
}

func (h *handler) deleteOpportunity(ctx context.Context, _ *sdkmcp.CallToolRequest, args opportunityIDParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.svc.DeleteOpportunity(ctx, h.state, args.ID); err != nil {
		return nil, nil, err
	}
	return nil, okResult{OK: true}, nil
}

func (h *handler) setStatus(ctx context.Context, _ *sdkmcp.CallToolRequest, args setStatusParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.svc.ApplyStatusChange(ctx, h.state, args.OpportunityID, opportunity.Status(args.Status)); err != nil {
		return nil, nil, err
	}
	return nil, okResult{OK: true}, nil
}

func (h *handler) listOpportunities(_ context.Context, _ *sdkmcp.CallToolRequest, args listOpportunitiesParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	page, counts, err := h.svc.Opportunities(h.state,
		opportunity.Filter{Status: opportunity.Status(args.Status), Query: args.Query},
		opportunity.SortMode(args.SortBy), args.Page, args.PerPage)
	if err != nil {
		return nil, nil, err
	}
	return nil, struct {
		opportunity.Page
		Counts opportunity.Counts `json:"counts"`
	}{page, counts}, nil
}

func (h *handler) addInterview(ctx context.Context, _ *sdkmcp.CallToolRequest, args addInterviewParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	date, err := parseLocalDate(args.Date)
	if err != nil {
		return nil, nil, err
	}
	iv, err := h.svc.AddInterview(ctx, h.state, args.OpportunityID, search.InterviewInput{
		Date:        date,
		Time:        args.Time,
		Type:        args.Type,
		Interviewer: args.Interviewer,
		Notes:       args.Notes,
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, iv, nil
}

func (h *handler) updateInterview(ctx context.Context, _ *sdkmcp.CallToolRequest, args updateInterviewParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	date, err := parseLocalDate(args.Date)
	if err != nil {
		return nil, nil, err
	}
	err = h.svc.UpdateInterview(ctx, h.state, args.OpportunityID, args.InterviewID, search.InterviewInput{
		Date:        date,
		Time:        args.Time,
		Type:        args.Type,
		Interviewer: args.Interviewer,
		Notes:       args.Notes,
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, okResult{OK: true}, nil
}

func (h *handler) deleteInterview(ctx context.Context, _ *sdkmcp.CallToolRequest, args interviewIDParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.svc.DeleteInterview(ctx, h.state, args.OpportunityID, args.InterviewID); err != nil {
		return nil, nil, err
	}
	return nil, okResult{OK: true}, nil
}

func (h *handler) addContact(ctx context.Context, _ *sdkmcp.CallToolRequest, args addContactParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, err := h.svc.AddContact(ctx, h.state, args.OpportunityID, search.ContactInput{
		Name:    args.Name,
		Role:    args.Role,
		Company: args.Company,
		Email:   args.Email,
		Phone:   args.Phone,
		Notes:   args.Notes,
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, c, nil
}

func (h *handler) updateContact(ctx context.Context, _ *sdkmcp.CallToolRequest, args updateContactParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	err := h.svc.UpdateContact(ctx, h.state, args.OpportunityID, args.ContactID, search.ContactInput{
		Name:    args.Name,
		Role:    args.Role,
		Company: args.Company,
		Email:   args.Email,
		Phone:   args.Phone,
		Notes:   args.Notes,
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, okResult{OK: true}, nil
}

func (h *handler) deleteContact(ctx context.Context, _ *sdkmcp.CallToolRequest, args contactIDParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.svc.DeleteContact(ctx, h.state, args.OpportunityID, args.ContactID); err != nil {
		return nil, nil, err
	}
	return nil, okResult{OK: true}, nil
}

func (h *handler) addRecruiter(ctx context.Context, _ *sdkmcp.CallToolRequest, args recruiterParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	r, err := h.svc.AddRecruiter(ctx, h.state, search.RecruiterInput{
		Name:      args.Name,
		Company:   args.Company,
		Email:     args.Email,
		Phone:     args.Phone,
		Specialty: args.Specialty,
		Notes:     args.Notes,
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, r, nil
}

func (h *handler) updateRecruiter(ctx context.Context, _ *sdkmcp.CallToolRequest, args recruiterParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	err := h.svc.UpdateRecruiter(ctx, h.state, args.ID, search.RecruiterInput{
		Name:      args.Name,
		Company:   args.Company,
		Email:     args.Email,
		Phone:     args.Phone,
		Specialty: args.Specialty,
		Notes:     args.Notes,
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, okResult{OK: true}, nil
}

func (h *handler) deleteRecruiter(ctx context.Context, _ *sdkmcp.CallToolRequest, args idParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.svc.DeleteRecruiter(ctx, h.state, args.ID); err != nil {
		return nil, nil, err
	}
	return nil, okResult{OK: true}, nil
}

func (h *handler) addResource(ctx context.Context, _ *sdkmcp.CallToolRequest, args resourceParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	r, err := h.svc.AddResource(ctx, h.state, search.ResourceInput{
		Name:        args.Name,
		URL:         args.URL,
		Category:    args.Category,
		Description: args.Description,
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, r, nil
}

func (h *handler) updateResource(ctx context.Context, _ *sdkmcp.CallToolRequest, args resourceParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	err := h.svc.UpdateResource(ctx, h.state, args.ID, search.ResourceInput{
		Name:        args.Name,
		URL:         args.URL,
		Category:    args.Category,
		Description: args.Description,
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, okResult{OK: true}, nil
}

func (h *handler) deleteResource(ctx context.Context, _ *sdkmcp.CallToolRequest, args idParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.svc.DeleteResource(ctx, h.state, args.ID); err != nil {
		return nil, nil, err
	}
	return nil, okResult{OK: true}, nil
}

func (h *handler) entryInput(args logEntryParams) (joblog.EntryInput, error) {
	date, err := parseInstant(args.Date)
	if err != nil {
		return joblog.EntryInput{}, err
	}
	return joblog.EntryInput{
		Date:          date,
		Type:          joblog.EntryType(args.Type),
		Description:   args.Description,
		Notes:         args.Notes,
		OpportunityID: args.OpportunityID,
		RecruiterID:   args.RecruiterID,
		OtherContact:  args.OtherContact,
		ContactMode:   joblog.ContactMode(args.ContactMode),
	}, nil
}

func (h *handler) addLogEntry(ctx context.Context, _ *sdkmcp.CallToolRequest, args logEntryParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	in, err := h.entryInput(args)
	if err != nil {
		return nil, nil, err
	}
	e, err := h.svc.AddLogEntry(ctx, h.state, in)
	if err != nil {
		return nil, nil, err
	}
	return nil, e, nil
}

func (h *handler) updateLogEntry(ctx context.Context, _ *sdkmcp.CallToolRequest, args logEntryParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	in, err := h.entryInput(args)
	if err != nil {
		return nil, nil, err
	}
	if err := h.svc.UpdateLogEntry(ctx, h.state, args.ID, in); err != nil {
		return nil, nil, err
	}
	return nil, okResult{OK: true}, nil
}

func (h *handler) deleteLogEntry(ctx context.Context, _ *sdkmcp.CallToolRequest, args idParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.svc.DeleteLogEntry(ctx, h.state, args.ID); err != nil {
		return nil, nil, err
	}
	return nil, okResult{OK: true}, nil
}

func (h *handler) listLog(_ context.Context, _ *sdkmcp.CallToolRequest, args listLogParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	f, err := h.logFilter(args.Query, args.StartDate, args.EndDate)
	if err != nil {
		return nil, nil, err
	}
	page, err := h.svc.LogEntries(h.state, f, args.Page, args.PerPage)
	if err != nil {
		return nil, nil, err
	}
	return nil, page, nil
}

func (h *handler) logFilter(query, start, end string) (joblog.Filter, error) {
	startDate, err := parseLocalDate(start)
	if err != nil {
		return joblog.Filter{}, err
	}
	endDate, err := parseLocalDate(end)
	if err != nil {
		return joblog.Filter{}, err
	}
	return joblog.Filter{Query: query, Start: startDate, End: endDate}, nil
}

func (h *handler) exportSearch(_ context.Context, _ *sdkmcp.CallToolRequest, args exportSearchParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	js := h.state.Current
	if js == nil {
		return nil, nil, search.ErrNoCurrentSearch
	}
	opps, err := h.svc.FilteredOpportunities(h.state,
		opportunity.Filter{Status: opportunity.Status(args.Status), Query: args.Query},
		opportunity.SortMode(args.SortBy))
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	var (
		data     []byte
		filename string
	)
	switch args.Format {
	case "json":
		data, filename, err = export.JSONSnapshot(js, opps, now)
	case "csv":
		data, filename, err = export.CSVReport(js, opps, now)
	case "table", "txt":
		data, filename, err = export.OpportunityTable(js, opps, now)
	case "pdf":
		data, filename, err = export.SummaryPDF(js, opps, now)
		if err != nil && !errors.Is(err, export.ErrEmptyExport) {
			return nil, nil, fmt.Errorf("PDF export failed: %v - try the CSV or table export instead", err)
		}
	default:
		return nil, nil, fmt.Errorf("unknown export format %q", args.Format)
	}
	if errors.Is(err, export.ErrEmptyExport) {
		return textResult("Nothing to export: the current filter matches no opportunities."), nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	return h.writeExport(filename, data)
}

func (h *handler) exportLog(_ context.Context, _ *sdkmcp.CallToolRequest, args exportLogParams) (*sdkmcp.CallToolResult, any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	js := h.state.Current
	if js == nil {
		return nil, nil, search.ErrNoCurrentSearch
	}
	f, err := h.logFilter(args.Query, args.StartDate, args.EndDate)
	if err != nil {
		return nil, nil, err
	}
	entries, err := h.svc.FilteredLog(h.state, f)
	if err != nil {
		return nil, nil, err
	}
	data, filename, err := export.LogReport(js, entries, f, time.Now())
	if errors.Is(err, export.ErrEmptyExport) {
		return textResult("Nothing to export: the current filter matches no log entries."), nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return h.writeExport(filename, data)
}

func (h *handler) writeExport(filename string, data []byte) (*sdkmcp.CallToolResult, any, error) {
	path := filepath.Join(h.exportDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, nil, fmt.Errorf("writing export file: %w", err)
	}
	h.logger.Info("wrote export", "file", path, "bytes", len(data))
	return nil, exportResult{File: path, Bytes: len(data)}, nil
}
