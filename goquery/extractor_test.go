package goquery_test

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/assist"
	"github.com/fwojciec/assist/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns empty sequences when no elements match", func(t *testing.T) {
		t.Parallel()

		html := `<html><head></head><body><div><span></span></div></body></html>`

		result := goquery.NewExtractor().Extract(html, assist.SnapshotOptions())

		assert.Equal(t, []string{}, result.Headings)
		assert.Equal(t, []assist.Link{}, result.Links)
		assert.Equal(t, []string{}, result.Paragraphs)
		assert.Equal(t, []string{}, result.FormLabels)
		assert.Equal(t, []assist.Field{}, result.FormFields)
		assert.Empty(t, result.RawText)
		assert.Empty(t, result.Error)
	})

	t.Run("extracts every category in document order", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title> ASSIST </title></head>
<body>
<h1>Welcome</h1>
<p>Plan your transfer.</p>
<h3>Agreements</h3>
<a href="/transfer">Explore Transfer</a>
<h2>Search</h2>
<label for="from">From</label>
<input id="from" name="from" type="text">
<p>Pick a school.</p>
</body>
</html>`

		result := goquery.NewExtractor().Extract(html, assist.ExtractOptions{})

		assert.Equal(t, "ASSIST", result.Title)
		assert.Equal(t, []string{"Welcome", "Agreements", "Search"}, result.Headings)
		assert.Equal(t, []assist.Link{{Text: "Explore Transfer", URL: "/transfer"}}, result.Links)
		assert.Equal(t, []string{"Plan your transfer.", "Pick a school."}, result.Paragraphs)
		assert.Equal(t, []string{"From"}, result.FormLabels)
		assert.Equal(t, []assist.Field{{Type: "text", ID: "from", Name: "from"}}, result.FormFields)
	})

	t.Run("uses sentinel title when document has none", func(t *testing.T) {
		t.Parallel()

		result := goquery.NewExtractor().Extract(`<p>x</p>`, assist.ExtractOptions{})

		assert.Equal(t, assist.NoTitle, result.Title)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		result := goquery.NewExtractor().Extract(`<p>  Hello  </p>`, assist.ExtractOptions{})

		assert.Equal(t, []string{"Hello"}, result.Paragraphs)
	})

	t.Run("drops empty and blank elements", func(t *testing.T) {
		t.Parallel()

		html := `<p></p><p>   </p><h1>
		</h1><label> </label>`

		result := goquery.NewExtractor().Extract(html, assist.ExtractOptions{})

		assert.Empty(t, result.Paragraphs)
		assert.Empty(t, result.Headings)
		assert.Empty(t, result.FormLabels)
	})

	t.Run("skips links without text or href", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/x"></a><a>Click</a><a href="">Empty</a><a href="/ok"> OK </a>`

		result := goquery.NewExtractor().Extract(html, assist.ExtractOptions{})

		assert.Equal(t, []assist.Link{{Text: "OK", URL: "/ok"}}, result.Links)
	})

	t.Run("defaults field type to tag name and id and name to sentinels", func(t *testing.T) {
		t.Parallel()

		html := `<select id="foo"></select><textarea name="notes"></textarea><input>`

		result := goquery.NewExtractor().Extract(html, assist.ExtractOptions{})

		require.Len(t, result.FormFields, 3)
		assert.Equal(t, assist.Field{Type: "select", ID: "foo", Name: "no-name"}, result.FormFields[0])
		assert.Equal(t, assist.Field{Type: "textarea", ID: "no-id", Name: "notes"}, result.FormFields[1])
		assert.Equal(t, assist.Field{Type: "input", ID: "no-id", Name: "no-name"}, result.FormFields[2])
	})

	t.Run("keeps explicit empty attributes", func(t *testing.T) {
		t.Parallel()

		result := goquery.NewExtractor().Extract(`<input type="" id="" name="">`, assist.ExtractOptions{})

		require.Len(t, result.FormFields, 1)
		assert.Equal(t, assist.Field{Type: "", ID: "", Name: ""}, result.FormFields[0])
	})

	t.Run("captures aria label only when requested", func(t *testing.T) {
		t.Parallel()

		html := `<input id="a" aria-label="Search institutions"><select id="b"></select>`

		plain := goquery.NewExtractor().Extract(html, assist.ExtractOptions{})
		rich := goquery.NewExtractor().Extract(html, assist.ExtractOptions{IncludeAriaLabel: true})

		require.Len(t, plain.FormFields, 2)
		assert.Nil(t, plain.FormFields[0].AriaLabel)
		assert.Nil(t, plain.FormFields[1].AriaLabel)

		require.Len(t, rich.FormFields, 2)
		require.NotNil(t, rich.FormFields[0].AriaLabel)
		assert.Equal(t, "Search institutions", *rich.FormFields[0].AriaLabel)
		require.NotNil(t, rich.FormFields[1].AriaLabel)
		assert.Empty(t, *rich.FormFields[1].AriaLabel)
	})

	t.Run("recovers from malformed markup", func(t *testing.T) {
		t.Parallel()

		html := `<div><p>Unclosed <b>bold<p>Second</div></span><h1>Title`

		result := goquery.NewExtractor().Extract(html, assist.ExtractOptions{})

		assert.Equal(t, []string{"Unclosed bold", "Second"}, result.Paragraphs)
		assert.Equal(t, []string{"Title"}, result.Headings)
	})

	t.Run("does not fail on binary input", func(t *testing.T) {
		t.Parallel()

		result := goquery.NewExtractor().Extract("\x00\xff\xfe\x89PNG\r\n\x1a\n", assist.LiveOptions())

		require.NotNil(t, result)
		assert.Empty(t, result.Headings)
		assert.Empty(t, result.Links)
		assert.Empty(t, result.Paragraphs)
		assert.Empty(t, result.FormLabels)
		assert.Empty(t, result.FormFields)
		assert.Empty(t, result.Error)
	})
}

func TestExtractor_Extract_Limits(t *testing.T) {
	t.Parallel()

	t.Run("stops after the limit", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		for i := range 15 {
			fmt.Fprintf(&b, "<h2>Heading %d</h2><p>Para %d</p>", i, i)
		}

		result := goquery.NewExtractor().Extract(b.String(), assist.LiveOptions())

		require.Len(t, result.Headings, 10)
		assert.Equal(t, "Heading 0", result.Headings[0])
		assert.Equal(t, "Heading 9", result.Headings[9])
		assert.Len(t, result.Paragraphs, 10)
	})

	t.Run("skipped elements do not count against the limit", func(t *testing.T) {
		t.Parallel()

		html := `<a>no href</a><a href="/a"></a><p></p>
<a href="/1">One</a><p>First</p><a href="/2">Two</a><p>Second</p><a href="/3">Three</a>`

		result := goquery.NewExtractor().Extract(html, assist.ExtractOptions{
			Limits: assist.Limits{Links: 2, Paragraphs: 1},
		})

		assert.Equal(t, []assist.Link{
			{Text: "One", URL: "/1"},
			{Text: "Two", URL: "/2"},
		}, result.Links)
		assert.Equal(t, []string{"First"}, result.Paragraphs)
	})

	t.Run("zero limits extract everything", func(t *testing.T) {
		t.Parallel()

		html := strings.Repeat(`<label>L</label><input>`, 30)

		result := goquery.NewExtractor().Extract(html, assist.SnapshotOptions())

		assert.Len(t, result.FormLabels, 30)
		assert.Len(t, result.FormFields, 30)
	})
}

func TestExtractor_Extract_RawText(t *testing.T) {
	t.Parallel()

	t.Run("omitted unless requested", func(t *testing.T) {
		t.Parallel()

		result := goquery.NewExtractor().Extract(`<p>Hello</p>`, assist.LiveOptions())

		assert.Empty(t, result.RawText)
	})

	t.Run("concatenates trimmed visible text", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>T</title><style>p { color: red }</style></head>
<body>
  <!-- hidden -->
  <h1> Hello </h1>
  <script>var x = "hidden";</script>
  <p>World <b>again</b></p>
</body></html>`

		result := goquery.NewExtractor().Extract(html, assist.SnapshotOptions())

		assert.Equal(t, "THelloWorldagain", result.RawText)
	})

	t.Run("skips noscript fallback content", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><noscript><img src="x.png"> Enable JavaScript</noscript><p>Hi</p></body></html>`

		result := goquery.NewExtractor().Extract(html, assist.SnapshotOptions())

		assert.Equal(t, "Hi", result.RawText)
	})

	t.Run("truncates to 500 characters", func(t *testing.T) {
		t.Parallel()

		first := strings.Repeat("x", 300)
		second := strings.Repeat("é", 300)
		html := "<html><body><p>" + first + "</p><div>" + second + "</div></body></html>"

		result := goquery.NewExtractor().Extract(html, assist.SnapshotOptions())

		assert.Equal(t, 500, utf8.RuneCountInString(result.RawText))
		assert.Equal(t, first+strings.Repeat("é", 200), result.RawText)
	})

	t.Run("keeps short text whole", func(t *testing.T) {
		t.Parallel()

		result := goquery.NewExtractor().Extract(`<div>short</div>`, assist.SnapshotOptions())

		assert.Equal(t, "short", result.RawText)
	})

	t.Run("omitted when document has no visible text", func(t *testing.T) {
		t.Parallel()

		result := goquery.NewExtractor().Extract(`<html><body>  <script>x()</script>  </body></html>`, assist.SnapshotOptions())

		assert.Empty(t, result.RawText)
	})
}
