// Package worksheet renders question banks as printable HTML worksheets,
// optionally with an answer key on the last page.
package worksheet

import (
	"fmt"
	"html/template"
	"io"
	"math/rand/v2"
	"time"

	"github.com/balajinix/avani-academy/internal/quiz"
)

// Options controls what goes into a worksheet.
type Options struct {
	// Title overrides the default "<Subject> Worksheet" heading.
	Title string

	// Count limits how many questions appear; 0 means all.
	Count int

	// Shuffle randomizes question order before applying Count.
	Shuffle bool

	// WithKey appends an answer key section.
	WithKey bool
}

// Renderer builds worksheets. The random source is injectable so tests can
// pin the shuffle order.
type Renderer struct {
	rng *rand.Rand
}

// New creates a Renderer seeded from the current time.
func New() *Renderer {
	now := uint64(time.Now().UnixNano())
	return NewWithRand(rand.New(rand.NewPCG(now, now>>32)))
}

// NewWithRand creates a Renderer using the given random source.
func NewWithRand(rng *rand.Rand) *Renderer {
	return &Renderer{rng: rng}
}

// optionLabels letters the choices A-D on the printed page.
var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

type renderedOption struct {
	Label string
	Text  string
}

type renderedQuestion struct {
	Number  int
	Text    string
	Chapter string
	Options []renderedOption
	Answer  string // label of the correct option, for the key
}

type pageData struct {
	Title     string
	Subject   string
	Date      string
	Questions []renderedQuestion
	WithKey   bool
}

// Render writes a worksheet for the subject's questions to w.
func (r *Renderer) Render(w io.Writer, subject string, questions []quiz.Question, opts Options) error {
	if len(questions) == 0 {
		return fmt.Errorf("no questions to render for %s", subject)
	}

	qs := append([]quiz.Question(nil), questions...)
	if opts.Shuffle {
		r.rng.Shuffle(len(qs), func(i, j int) {
			qs[i], qs[j] = qs[j], qs[i]
		})
	}
	if opts.Count > 0 && opts.Count < len(qs) {
		qs = qs[:opts.Count]
	}

	title := opts.Title
	if title == "" {
		title = subject + " Worksheet"
	}

	data := pageData{
		Title:   title,
		Subject: subject,
		Date:    time.Now().Format("January 2, 2006"),
		WithKey: opts.WithKey,
	}
	for i, q := range qs {
		rq := renderedQuestion{
			Number:  i + 1,
			Text:    q.Text,
			Chapter: q.Chapter,
		}
		for j, opt := range q.Options {
			label := optionLabels[j%len(optionLabels)]
			rq.Options = append(rq.Options, renderedOption{Label: label, Text: opt})
			if opt == q.Answer {
				rq.Answer = label
			}
		}
		data.Questions = append(data.Questions, rq)
	}

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render worksheet: %w", err)
	}
	return nil
}

var pageTemplate = template.Must(template.New("worksheet").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Georgia, serif; margin: 2rem auto; max-width: 46rem; color: #222; }
  header { border-bottom: 2px solid #222; padding-bottom: 0.5rem; margin-bottom: 1.5rem; }
  h1 { margin: 0; font-size: 1.6rem; }
  .meta { color: #666; font-size: 0.9rem; }
  ol.questions { padding-left: 1.4rem; }
  ol.questions > li { margin-bottom: 1.2rem; }
  ul.options { list-style: none; padding-left: 0.4rem; margin: 0.4rem 0 0; }
  ul.options li { margin: 0.15rem 0; }
  .label { font-weight: bold; margin-right: 0.4rem; }
  .key { page-break-before: always; border-top: 2px solid #222; margin-top: 2rem; padding-top: 1rem; }
  .key h2 { font-size: 1.2rem; }
</style>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <div class="meta">{{.Subject}} &middot; {{.Date}} &middot; Name: ____________________</div>
</header>
<ol class="questions">
{{range .Questions}}  <li>{{.Text}}
    <ul class="options">
{{range .Options}}      <li><span class="label">{{.Label}}.</span>{{.Text}}</li>
{{end}}    </ul>
  </li>
{{end}}</ol>
{{if .WithKey}}<section class="key">
  <h2>Answer Key</h2>
  <ol>
{{range .Questions}}    <li>{{.Answer}}</li>
{{end}}  </ol>
</section>
{{end}}</body>
</html>
`))
