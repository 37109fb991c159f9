// Package report turns a burgess analysis into a Run: a uniquely identified,
// serializable summary that renders as terminal or Markdown tables
// (go-pretty) or as JSON.
package report
