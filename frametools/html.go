package frametools

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

var indexTmpl = template.Must(template.New("index").Parse(`<html>
<head><title>Plot Index</title></head>
<body>
<h1>Plot Index</h1>
{{if .HomeLink}}<p><a href="{{.HomeLink}}">Back</a></p>{{end}}
<table border="1" cellpadding="4">
<tr><th>Frame</th>{{range .Figures}}<th>{{.Name}}</th>{{end}}</tr>
{{range .Frames}}<tr>
<td><a href="{{.Page}}">Frame {{.No}}</a></td>
{{range .Images}}<td><a href="{{.}}">{{.}}</a></td>{{end}}
</tr>{{end}}
</table>
</body>
</html>
`))

var frameTmpl = template.Must(template.New("frame").Parse(`<html>
<head><title>Frame {{.No}}</title></head>
<body>
<h1>Frame {{.No}}</h1>
<p>
{{if .Prev}}<a href="{{.Prev}}">&lt;&lt; Prev</a>{{end}}
<a href="_PlotIndex.html">Index</a>
{{if .Next}}<a href="{{.Next}}">Next &gt;&gt;</a>{{end}}
</p>
{{range .Images}}<p><img src="{{.}}" width="45%"></p>{{end}}
</body>
</html>
`))

type frameEntry struct {
	No         int
	Page       string
	Prev, Next string
	Images     []string
}

// writeHTML produces _PlotIndex.html plus one page per frame with
// previous/next navigation
func (pd *PlotData) writeHTML(frames []int, figs []*Figure) (err error) {
	var entries []frameEntry
	for i, frame := range frames {
		e := frameEntry{
			No:   frame,
			Page: framePage(frame),
		}
		if i > 0 {
			e.Prev = framePage(frames[i-1])
		}
		if i < len(frames)-1 {
			e.Next = framePage(frames[i+1])
		}
		for _, fig := range figs {
			e.Images = append(e.Images, pd.imageName(frame, fig.FigNo))
		}
		entries = append(entries, e)
		var f *os.File
		if f, err = os.Create(filepath.Join(pd.PlotDir, e.Page)); err != nil {
			return
		}
		if err = frameTmpl.Execute(f, e); err != nil {
			f.Close()
			return
		}
		f.Close()
	}
	f, err := os.Create(filepath.Join(pd.PlotDir, "_PlotIndex.html"))
	if err != nil {
		return
	}
	defer f.Close()
	return indexTmpl.Execute(f, struct {
		HomeLink string
		Figures  []*Figure
		Frames   []frameEntry
	}{pd.HTMLHomeLink, figs, entries})
}

func framePage(frame int) string {
	return fmt.Sprintf("frame%04d.html", frame)
}
