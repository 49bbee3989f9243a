package pdf

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// DocumentData is the flattened content of a commercial document, one
// renderer for quotes, invoices and contracts.
type DocumentData struct {
	DocLabel    string // "Devis", "Facture", "Facture proforma", "Contrat"
	Number      string
	Date        string
	PartnerName string
	PartnerInfo []string // address block, one line per entry
	Title       string
	Lines       []TableLine // item or clause rows
	Subtotal    *int64
	Total       *int64
	Footer      string
}

// TableLine is one printable row of the document body.
type TableLine struct {
	Left  string
	Right string
}

type jsonText struct {
	Value    string    `json:"value"`
	Anchor   string    `json:"anchor,omitempty"`
	Position []float64 `json:"position,omitempty"`
	Font     jsonFont  `json:"font"`
}

type jsonFont struct {
	Name string  `json:"name"`
	Size float64 `json:"size"`
}

type jsonContent struct {
	Text []jsonText `json:"text"`
}

type jsonPage struct {
	Content jsonContent `json:"content"`
}

type jsonLayout struct {
	Paper string              `json:"paper"`
	Pages map[string]jsonPage `json:"pages"`
}

// Renderer produces A4 PDFs from document data. pdfcpu builds the page from
// a JSON description, so rendering goes through a pair of temp files.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render returns the PDF bytes for the document.
func (r *Renderer) Render(data DocumentData) ([]byte, error) {
	layout := r.buildLayout(data)

	layoutBytes, err := json.Marshal(layout)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pdf layout: %w", err)
	}

	layoutFile, err := os.CreateTemp("", "doc_layout_*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to create layout temp file: %w", err)
	}
	defer os.Remove(layoutFile.Name())

	if _, err := layoutFile.Write(layoutBytes); err != nil {
		layoutFile.Close()
		return nil, fmt.Errorf("failed to write layout temp file: %w", err)
	}
	layoutFile.Close()

	outFile, err := os.CreateTemp("", "doc_output_*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create output temp file: %w", err)
	}
	defer os.Remove(outFile.Name())
	outFile.Close()

	if err := api.CreateFile("", layoutFile.Name(), outFile.Name(), nil); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}

	rendered, err := os.ReadFile(outFile.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to read rendered pdf: %w", err)
	}
	return rendered, nil
}

func (r *Renderer) buildLayout(data DocumentData) jsonLayout {
	texts := []jsonText{
		{Value: "YAMA+", Position: []float64{50, 800}, Font: jsonFont{Name: "Helvetica-Bold", Size: 20}},
		{Value: fmt.Sprintf("%s %s", data.DocLabel, data.Number), Position: []float64{50, 770}, Font: jsonFont{Name: "Helvetica-Bold", Size: 14}},
		{Value: "Date : " + data.Date, Position: []float64{50, 752}, Font: jsonFont{Name: "Helvetica", Size: 10}},
		{Value: data.PartnerName, Position: []float64{350, 770}, Font: jsonFont{Name: "Helvetica-Bold", Size: 11}},
	}

	y := 755.0
	for _, line := range data.PartnerInfo {
		texts = append(texts, jsonText{
			Value: line, Position: []float64{350, y}, Font: jsonFont{Name: "Helvetica", Size: 9},
		})
		y -= 13
	}

	texts = append(texts, jsonText{
		Value: data.Title, Position: []float64{50, 700}, Font: jsonFont{Name: "Helvetica-Bold", Size: 12},
	})

	y = 670
	for _, line := range data.Lines {
		texts = append(texts, jsonText{
			Value: line.Left, Position: []float64{50, y}, Font: jsonFont{Name: "Helvetica", Size: 10},
		})
		if line.Right != "" {
			texts = append(texts, jsonText{
				Value: line.Right, Position: []float64{480, y}, Font: jsonFont{Name: "Helvetica", Size: 10},
			})
		}
		y -= 18
		if y < 80 {
			break
		}
	}

	if data.Subtotal != nil {
		y -= 10
		texts = append(texts, jsonText{
			Value: fmt.Sprintf("Sous-total : %d FCFA", *data.Subtotal),
			Position: []float64{350, y}, Font: jsonFont{Name: "Helvetica", Size: 11},
		})
		y -= 18
	}
	if data.Total != nil {
		texts = append(texts, jsonText{
			Value: fmt.Sprintf("Total : %d FCFA", *data.Total),
			Position: []float64{350, y}, Font: jsonFont{Name: "Helvetica-Bold", Size: 12},
		})
	}

	if data.Footer != "" {
		texts = append(texts, jsonText{
			Value: data.Footer, Position: []float64{50, 40}, Font: jsonFont{Name: "Helvetica", Size: 8},
		})
	}

	return jsonLayout{
		Paper: "A4",
		Pages: map[string]jsonPage{
			"1": {Content: jsonContent{Text: texts}},
		},
	}
}
