package mcpserver

// DocumentFormatContract describes the Markdown document format the
// gallery understands. LLM consumers should follow it when authoring
// documents for the showcased source.
const DocumentFormatContract = `# Showcase Document Format

Every project document is a plain Markdown file. The gallery derives the
card fields from its content as follows.

## Structure

` + "```" + `markdown
# Human-readable project title

Tags: web, golang, side-project

First paragraph of the description. The gallery takes up to four
non-blank lines after the title as the card preview.

The rest of the body is shown only in the full project view.
` + "```" + `

## Rules

1. **Title** is the first Markdown heading in the file (any level). If no
   heading exists, the file name without its extension is used instead.
2. **Tags line** is any line starting with ` + "`" + `Tags:` + "`" + ` (case-insensitive),
   followed by a comma-separated list. Empty entries are dropped. Only the
   first tags line counts.
3. **Preview** is the first four non-blank lines after the title, joined
   with spaces. The tags line never appears in the preview.
4. **Publication date** comes from the source (commit history or the
   manifest), not from the document itself.
5. **Encoding** is UTF-8. File names end with ` + "`" + `.md` + "`" + `.
6. Body HTML is sanitized before display; stick to plain Markdown.
`
