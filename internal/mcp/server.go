package mcp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/annotext/mcp-pdf-comments/internal/comments"
	"github.com/annotext/mcp-pdf-comments/internal/config"
	"github.com/annotext/mcp-pdf-comments/internal/descriptions"
	"github.com/annotext/mcp-pdf-comments/internal/export"
	"github.com/annotext/mcp-pdf-comments/internal/pdf"
	"github.com/annotext/mcp-pdf-comments/internal/session"
)

// Server represents the MCP server instance
type Server struct {
	config    *config.Config
	validator *pdf.Validator
	session   *session.Session
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, validator *pdf.Validator, sess *session.Session) (*Server, error) {
	if validator == nil {
		return nil, fmt.Errorf("validator cannot be nil")
	}
	if sess == nil {
		return nil, fmt.Errorf("session cannot be nil")
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:    cfg,
		validator: validator,
		session:   sess,
		mcpServer: mcpServer,
	}

	// Register tools
	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	// Register comment extraction tool
	extractCommentsTool := mcp.NewTool(
		"pdf_extract_comments",
		mcp.WithDescription(descriptions.GetToolDescription("pdf_extract_comments")),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(extractCommentsTool, s.handleExtractComments)

	// Register PDF validate file tool
	validateFileTool := mcp.NewTool(
		"pdf_validate_file",
		mcp.WithDescription(descriptions.GetToolDescription("pdf_validate_file")),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(validateFileTool, s.handleValidateFile)

	// Register column projection tool
	setColumnsTool := mcp.NewTool(
		"comments_set_columns",
		mcp.WithDescription(descriptions.GetToolDescription("comments_set_columns")),
		mcp.WithBoolean("page",
			mcp.Description("Include the page number column"),
		),
		mcp.WithBoolean("author",
			mcp.Description("Include the author column"),
		),
		mcp.WithBoolean("modified",
			mcp.Description("Include the modification date column"),
		),
	)
	s.mcpServer.AddTool(setColumnsTool, s.handleSetColumns)

	// Register row selection tool
	setSelectionTool := mcp.NewTool(
		"comments_set_selection",
		mcp.WithDescription(descriptions.GetToolDescription("comments_set_selection")),
		mcp.WithArray("indices",
			mcp.Description("Zero-based record indices to export; omit or pass an empty array to export all"),
		),
	)
	s.mcpServer.AddTool(setSelectionTool, s.handleSetSelection)

	// Register export tool
	exportTool := mcp.NewTool(
		"comments_export",
		mcp.WithDescription(descriptions.GetToolDescription("comments_export")),
		mcp.WithString("format",
			mcp.Description("Export format: csv, tsv or text (default csv)"),
		),
	)
	s.mcpServer.AddTool(exportTool, s.handleExport)

	// Register clipboard tool
	copyTool := mcp.NewTool(
		"comments_copy",
		mcp.WithDescription(descriptions.GetToolDescription("comments_copy")),
		mcp.WithString("format",
			mcp.Description("Export format: csv, tsv or text (default csv)"),
		),
	)
	s.mcpServer.AddTool(copyTool, s.handleCopy)

	// Register save tool
	saveTool := mcp.NewTool(
		"comments_save",
		mcp.WithDescription(descriptions.GetToolDescription("comments_save")),
		mcp.WithString("format",
			mcp.Description("Export format: csv or text (default csv)"),
		),
		mcp.WithString("directory",
			mcp.Description("Target directory (uses the configured PDF directory if empty)"),
		),
	)
	s.mcpServer.AddTool(saveTool, s.handleSave)

	// Register unload tool
	unloadTool := mcp.NewTool(
		"comments_unload",
		mcp.WithDescription(descriptions.GetToolDescription("comments_unload")),
	)
	s.mcpServer.AddTool(unloadTool, s.handleUnload)

	// Register server info tool
	serverInfoTool := mcp.NewTool(
		"comments_server_info",
		mcp.WithDescription(descriptions.GetToolDescription("comments_server_info")),
	)
	s.mcpServer.AddTool(serverInfoTool, s.handleServerInfo)
}

// Handler functions
func (s *Server) handleExtractComments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := pdf.Open(path, s.config.MaxFileSize)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer doc.Close()

	count, empty := s.session.Load(filepath.Base(path), doc)

	responseText := fmt.Sprintf("Loaded document: %s\n", filepath.Base(path))
	responseText += fmt.Sprintf("Pages: %d\n", doc.NumPages())
	responseText += fmt.Sprintf("Comments extracted: %d\n", count)
	if empty {
		responseText += "\nNo comments found in this document. It can still be unloaded or replaced, " +
			"but there is nothing to export.\n"
	} else {
		responseText += "\n" + s.formatRecords(s.session.Records())
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleValidateFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if err := s.validator.ValidateFile(path); err != nil {
		responseText = fmt.Sprintf("PDF validation failed for %s: %s", path, err)
	} else {
		responseText = fmt.Sprintf("PDF file %s is valid and readable", path)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleSetColumns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	toggles := []struct {
		arg   string
		field export.Field
	}{
		{"page", export.FieldPage},
		{"author", export.FieldAuthor},
		{"modified", export.FieldModified},
	}

	changed := false
	for _, t := range toggles {
		v, ok := args[t.arg]
		if !ok {
			continue
		}
		on, ok := v.(bool)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("argument %q must be a boolean", t.arg)), nil
		}
		if err := s.session.SetColumn(t.field, on); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		changed = true
	}

	responseText := s.formatProjection(s.session.Projection())
	if !changed {
		responseText = "No columns changed.\n" + responseText
	}
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleSetSelection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	var indices []int
	if raw, ok := args["indices"]; ok && raw != nil {
		list, ok := raw.([]interface{})
		if !ok {
			return mcp.NewToolResultError("argument \"indices\" must be an array of integers"), nil
		}
		for _, item := range list {
			n, ok := item.(float64)
			if !ok || n != float64(int(n)) {
				return mcp.NewToolResultError(fmt.Sprintf("invalid index: %v", item)), nil
			}
			indices = append(indices, int(n))
		}
	}

	s.session.SetSelection(indices)

	if len(indices) == 0 {
		return mcp.NewToolResultText("Selection cleared; exports will include all comments."), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Selection set to %d row(s); exports keep document order.",
		len(dedupe(indices)))), nil
}

func (s *Server) handleExport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, errResult := s.requestedFormat(request, nil)
	if errResult != nil {
		return errResult, nil
	}

	out, err := s.session.Export(format)
	if err != nil {
		return mcp.NewToolResultError(exportErrorMessage(err)), nil
	}

	return mcp.NewToolResultText(out), nil
}

func (s *Server) handleCopy(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, errResult := s.requestedFormat(request, nil)
	if errResult != nil {
		return errResult, nil
	}

	out, err := s.session.CopyToClipboard(format)
	if err != nil {
		if errors.Is(err, comments.ErrSinkFailure) && out != "" {
			// Clipboard unavailable; hand the rendered text back so
			// nothing is lost.
			responseText := fmt.Sprintf("Could not copy to clipboard (%s). Rendered export follows:\n\n%s", err, out)
			return mcp.NewToolResultText(responseText), nil
		}
		return mcp.NewToolResultError(exportErrorMessage(err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Copied %d bytes to the clipboard as %s.", len(out), format)), nil
}

func (s *Server) handleSave(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Saved files are meant for spreadsheets or plain reading; TSV
	// exists for clipboard paste only.
	format, errResult := s.requestedFormat(request, []export.Format{export.FormatCSV, export.FormatText})
	if errResult != nil {
		return errResult, nil
	}

	args := request.GetArguments()
	directory := s.config.PDFDirectory // default
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	path, err := s.session.SaveTo(directory, format)
	if err != nil {
		return mcp.NewToolResultError(exportErrorMessage(err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Saved %s export to %s", format, path)), nil
}

func (s *Server) handleUnload(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.session.Loaded() {
		return mcp.NewToolResultText("No document loaded."), nil
	}

	name := s.session.DocumentName()
	s.session.Unload()

	return mcp.NewToolResultText(fmt.Sprintf("Unloaded %s. Column preferences are kept.", name)), nil
}

func (s *Server) handleServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(s.formatServerInfo()), nil
}

// requestedFormat reads the optional "format" argument, defaulting to
// CSV. A non-nil allowed list restricts the accepted formats.
func (s *Server) requestedFormat(request mcp.CallToolRequest, allowed []export.Format) (export.Format, *mcp.CallToolResult) {
	args := request.GetArguments()

	raw := "csv"
	if f, ok := args["format"].(string); ok && f != "" {
		raw = f
	}

	format, err := export.ParseFormat(raw)
	if err != nil {
		return "", mcp.NewToolResultError(err.Error())
	}

	if allowed != nil {
		permitted := false
		for _, a := range allowed {
			if format == a {
				permitted = true
				break
			}
		}
		if !permitted {
			names := make([]string, len(allowed))
			for i, a := range allowed {
				names[i] = string(a)
			}
			return "", mcp.NewToolResultError(
				fmt.Sprintf("format %q not supported here (use one of: %s)", raw, strings.Join(names, ", ")))
		}
	}

	return format, nil
}

// exportErrorMessage maps the export error taxonomy onto actionable
// messages for the caller.
func exportErrorMessage(err error) string {
	switch {
	case errors.Is(err, comments.ErrNoDocument):
		return "No document loaded. Use pdf_extract_comments first."
	case errors.Is(err, comments.ErrNothingToExport):
		return "Nothing to export: the loaded document has no comments in the current selection."
	default:
		return err.Error()
	}
}

// Formatting methods
func (s *Server) formatRecords(records []comments.CommentRecord) string {
	text := "Comments:\n"
	for i, r := range records {
		text += fmt.Sprintf("%d. Page %d", i, r.Page)
		if r.Author != "" {
			text += fmt.Sprintf(", %s", r.Author)
		}
		if r.Modified != "" {
			text += fmt.Sprintf(" (%s)", r.Modified)
		}
		text += fmt.Sprintf(": %s\n", r.Comment)
	}
	return text
}

func (s *Server) formatProjection(proj export.ColumnProjection) string {
	text := "Export columns:\n"
	for _, f := range proj.Fields() {
		text += fmt.Sprintf("  • %s\n", f)
	}
	text += "The Comment column is always included.\n"
	return text
}

func (s *Server) formatServerInfo() string {
	text := fmt.Sprintf("📋 %s v%s - Server Information\n", s.config.ServerName, s.config.Version)
	text += fmt.Sprintf("📁 PDF Directory: %s\n", s.config.PDFDirectory)
	text += fmt.Sprintf("📏 Max File Size: %d MB\n\n", s.config.MaxFileSize/(1024*1024))

	// Session state
	if s.session.Loaded() {
		text += fmt.Sprintf("📄 Loaded Document: %s\n", s.session.DocumentName())
		text += fmt.Sprintf("💬 Comments: %d", s.session.RecordCount())
		if sel := s.session.Selection(); len(sel) > 0 {
			text += fmt.Sprintf(" (%d selected)", len(sel))
		}
		text += "\n"
	} else {
		text += "📄 Loaded Document: none\n"
	}
	text += "\n" + s.formatProjection(s.session.Projection())

	// Available tools
	text += "\n🛠️  Available Tools:\n"
	names := descriptions.GetAllToolNames()
	sort.Strings(names)
	for _, name := range names {
		text += fmt.Sprintf("  • %s\n", name)
	}

	return text
}

func dedupe(indices []int) []int {
	seen := make(map[int]struct{}, len(indices))
	out := indices[:0:0]
	for _, i := range indices {
		if _, ok := seen[i]; ok {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}
	return out
}

// Run starts the MCP server on stdio
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting PDF comments MCP server on stdio")
		log.Printf("PDF directory: %s", s.config.PDFDirectory)
	}

	// Use the mark3labs/mcp-go server.ServeStdio function
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
