package drawer

import (
	"fmt"
	"io"
	"os"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/pipeline-params/internal/store"
	"github.com/askiada/pipeline-params/pkg/collector/measure"
)

// DOTDrawer is a drawer that creates a Graphviz DOT file with the flow graph.
type DOTDrawer struct {
	store       store.CustomStore[string, string]
	graph       graph.Graph[string, string]
	dotFileName string
}

// NewDOTDrawer creates a new DOT drawer.
func NewDOTDrawer(dotFileName string) *DOTDrawer {
	s := store.NewOrderedStore[string, string]()
	return &DOTDrawer{
		dotFileName: dotFileName,
		store:       s,
		graph:       graph.NewWithStore(graph.StringHash, s, graph.Directed()),
	}
}

// AddStep adds a step to the flow graph.
func (d *DOTDrawer) AddStep(name string) error {
	err := d.graph.AddVertex(name)
	if err != nil {
		return errors.Wrapf(err, "unable to add vertex %s", name)
	}

	return nil
}

// AddLink adds a link between parent and children steps.
func (d *DOTDrawer) AddLink(parentName, childrenName string) error {
	err := d.graph.AddEdge(parentName, childrenName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childrenName)
	}

	return nil
}

// SetTotalTime sets the time spent in the step.
func (d *DOTDrawer) SetTotalTime(stepName string, totalTime time.Duration) error {
	err := d.store.UpdateVertex(stepName, func(p *graph.VertexProperties) {
		p.Attributes["xlabel"] = totalTime.String()
	})
	if err != nil {
		return errors.Wrapf(err, "unable to set total time of %s", stepName)
	}

	return nil
}

const maxRGB = 240

// AddMeasure colours every measured step from blue (fastest) to red (slowest).
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	metrics := msr.AllMetrics()

	var minValue, maxValue time.Duration
	first := true
	for _, mt := range metrics {
		total := mt.GetTotalDuration()
		if total == 0 {
			continue
		}
		if first || total < minValue {
			minValue = total
		}
		if first || total > maxValue {
			maxValue = total
		}
		first = false
	}

	names, err := d.store.ListVertices()
	if err != nil {
		return errors.Wrap(err, "unable to list vertices")
	}

	for _, name := range names {
		mt, ok := metrics[name]
		if !ok || mt.GetTotalDuration() == 0 {
			continue
		}

		fraction := 1.0
		if maxValue > minValue {
			fraction = float64(mt.GetTotalDuration()-minValue) / float64(maxValue-minValue)
		}

		red := maxRGB * fraction
		blue := maxRGB - red

		colour, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
		if err != nil {
			return errors.Wrap(err, "unable to get colour")
		}

		label := fmt.Sprintf("%s, %d attempt(s)", mt.GetTotalDuration(), mt.Attempts())
		err = d.store.UpdateVertex(name, func(p *graph.VertexProperties) {
			p.Attributes["style"] = "filled"
			p.Attributes["fontcolor"] = "white"
			p.Attributes["fillcolor"] = colour.ToHEX().String()
			p.Attributes["xlabel"] = label
		})
		if err != nil {
			return errors.Wrapf(err, "unable to update vertex %s", name)
		}
	}

	return nil
}

// Render writes the flow graph in DOT format to w.
func (d *DOTDrawer) Render(w io.Writer) error {
	desc, err := d.describe()
	if err != nil {
		return errors.Wrap(err, "unable to generate DOT description")
	}

	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "unable to parse template")
	}

	return tpl.Execute(w, desc)
}

// Draw creates a DOT file with the flow graph.
func (d *DOTDrawer) Draw() error {
	file, err := os.Create(d.dotFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.dotFileName)
	}
	defer file.Close()

	err = d.Render(file)
	if err != nil {
		return errors.Wrapf(err, "unable to write dot file %s", d.dotFileName)
	}

	return nil
}

const dotTemplate = `strict digraph {
	rankdir="LR";
{{- range .Statements}}
	"{{.Source}}"{{if .Target}} -> "{{.Target}}"{{else}} [ {{range .Attributes}}{{.}}, {{end}}weight={{.Weight}} ]{{end}};
{{- end}}
}
`

type description struct {
	Statements []statement
}

type statement struct {
	Source     string
	Target     string
	Weight     int
	Attributes []string
}

func (d *DOTDrawer) describe() (description, error) {
	desc := description{}

	names, err := d.store.ListVertices()
	if err != nil {
		return desc, err
	}

	adjacencyMap, err := d.graph.AdjacencyMap()
	if err != nil {
		return desc, err
	}

	for _, name := range names {
		_, props, err := d.store.Vertex(name)
		if err != nil {
			return desc, err
		}
		desc.Statements = append(desc.Statements, statement{
			Source:     name,
			Weight:     props.Weight,
			Attributes: nodeAttributes(name, props.Attributes),
		})
	}

	for _, source := range names {
		for _, target := range names {
			if _, ok := adjacencyMap[source][target]; ok {
				desc.Statements = append(desc.Statements, statement{Source: source, Target: target})
			}
		}
	}

	return desc, nil
}

var attributeOrder = []string{"style", "fillcolor", "fontcolor"}

func nodeAttributes(name string, attributes map[string]string) []string {
	res := []string{}
	if xlabel, ok := attributes["xlabel"]; ok {
		res = append(res, fmt.Sprintf(`label=<%s <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, name, xlabel))
	}
	for _, key := range attributeOrder {
		if value, ok := attributes[key]; ok {
			res = append(res, fmt.Sprintf("%s=%q", key, value))
		}
	}

	return res
}
