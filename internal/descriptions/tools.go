package descriptions

// Tool descriptions with practical examples and use cases

const (
	// Document Tools
	PDFExtractCommentsDescription = `Load a PDF and extract its annotation comments (sticky notes) into the session.

**When to use:** Starting a review workflow on an annotated PDF, before selecting or exporting comments.

**Why it's useful:** Collects every text annotation with its page number, author, timestamp, and comment body, resolving the many places PDF producers hide these fields.

**Examples:**
• Review collection: "Load review-draft.pdf and list every reviewer comment"
• Feedback triage: "Extract comments from design-v3.pdf to see outstanding notes"

**Common workflows:**
1. Review Export: Extract comments → Select rows → Export as CSV for a tracker
2. Quick Read: Extract comments → Export as text → Paste into a reply

**Best practices:** Validate unfamiliar files first with pdf_validate_file; a document with zero comments loads fine and reports the fact.`

	PDFValidateFileDescription = `Verify PDF file integrity and readability before processing.

**When to use:** Before loading any PDF, especially in automated workflows or when handling user uploads.

**Why it's useful:** Prevents processing errors and identifies corrupted files early.

**Examples:**
• Upload verification: "Check user-uploaded review.pdf is valid before extracting comments"
• Quality control: "Verify exported-report.pdf is readable before circulating it"

**Common workflows:**
1. Automated Processing: Validate → Extract if valid → Handle errors gracefully
2. File Quality Check: Validate → Report issues → Fix or reject bad files

**Best practices:** Always run this first in automated workflows handling unknown PDFs.`

	// Session Tools
	CommentsSetColumnsDescription = `Choose which columns appear in exports: page, author, and modification date can each be toggled.

**When to use:** The export needs fewer columns, e.g. a plain comment list without page numbers.

**Why it's useful:** The choice persists across documents and server restarts, so a preferred layout is set once. The comment column is always included.

**Examples:**
• Minimal export: "Disable page and modified so the CSV has only author and comment"
• Full export: "Enable all columns for the audit spreadsheet"`

	CommentsSetSelectionDescription = `Restrict exports to specific comment rows by zero-based index.

**When to use:** Only some of the extracted comments should be exported.

**Why it's useful:** Exports always keep document order regardless of the order indices are given; duplicates and out-of-range indices are ignored. An empty selection exports everything.

**Examples:**
• Partial export: "Export only rows 0, 3 and 7 from the loaded document"
• Reset: "Clear the selection to export all comments again"`

	CommentsExportDescription = `Render the selected comments in a chosen format and return the text.

**When to use:** The comment export should be inspected or passed along directly rather than copied or saved.

**Why it's useful:** Supports csv (spreadsheet import), tsv (tab-separated, fully quoted) and text (readable "P<page>, Author - comment" blocks), honoring the column and row choices.

**Examples:**
• Spreadsheet prep: "Export the comments as CSV"
• Readable summary: "Export the selected comments as text for the review email"`

	CommentsCopyDescription = `Render the selected comments and place them on the system clipboard.

**When to use:** The export is headed for a spreadsheet or editor paste.

**Why it's useful:** One step from PDF to paste. If no clipboard is available the rendered text is still returned so nothing is lost.

**Examples:**
• Spreadsheet paste: "Copy the comments as TSV and paste into the sheet"
• Email paste: "Copy the selected comments as text"`

	CommentsSaveDescription = `Render the selected comments and write them to a file named after the document.

**When to use:** The export should land on disk, e.g. next to the reviewed PDF.

**Why it's useful:** Derives the file name automatically ("review.pdf" becomes "review_comments.csv"), so saved exports stay associated with their source document.

**Examples:**
• Archive: "Save the comments of review.pdf as CSV in the documents directory"
• Hand-off: "Save a text export to /tmp for the ticket attachment"`

	CommentsUnloadDescription = `Discard the loaded document and its extracted comments.

**When to use:** Finishing work on a document without loading another one.

**Why it's useful:** Clears document state and row selection while keeping the persisted column preferences for the next document.`

	CommentsServerInfoDescription = `Get server status, configuration, and the list of available tools.

**When to use:** Starting a session, troubleshooting, or checking what is currently loaded.

**Why it's useful:** Reports the configured document directory, the loaded document and its comment count, and the active column projection in one call.`
)

// ToolDescriptions maps tool names to their descriptions
var ToolDescriptions = map[string]string{
	"pdf_extract_comments":   PDFExtractCommentsDescription,
	"pdf_validate_file":      PDFValidateFileDescription,
	"comments_set_columns":   CommentsSetColumnsDescription,
	"comments_set_selection": CommentsSetSelectionDescription,
	"comments_export":        CommentsExportDescription,
	"comments_copy":          CommentsCopyDescription,
	"comments_save":          CommentsSaveDescription,
	"comments_unload":        CommentsUnloadDescription,
	"comments_server_info":   CommentsServerInfoDescription,
}

// GetToolDescription returns the description for a tool
func GetToolDescription(toolName string) string {
	if desc, exists := ToolDescriptions[toolName]; exists {
		return desc
	}
	return "Tool description not available"
}

// GetAllToolNames returns a list of all available tool names
func GetAllToolNames() []string {
	var names []string
	for name := range ToolDescriptions {
		names = append(names, name)
	}
	return names
}
