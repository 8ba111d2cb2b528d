// Package render — PDF renderer.
// Lays the converted Markdown out as an A4 document with gofpdf. Blocks are
// read back with goldmark; headings scale with their level and code blocks
// are set in Courier. Links that resolve to an absolute URL stay clickable.
// Images are not rendered, only their alt text.
package render

import (
	"bytes"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/html2md/core"
	"github.com/gaurav-prasanna/html2md/core/links"
	"github.com/jung-kurt/gofpdf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var headingSizes = map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}

// PDFRenderer renders the conversion as a PDF document.
type PDFRenderer struct {
	md goldmark.Markdown
}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{md: goldmark.New()}
}

// Render lays out the Markdown of conv under a title and source line.
func (r *PDFRenderer) Render(conv *core.Conversion, meta core.PageMetadata) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetCreator("html2md", false)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if meta.Title != "" {
		pdf.SetTitle(meta.Title, true)
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, tr(meta.Title), "", "L", false)
		pdf.Ln(4)
	}
	if meta.Source != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr("Source: "+meta.Source), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(6)
	}

	p := &pdfPage{
		pdf:  pdf,
		tr:   tr,
		src:  []byte(conv.Markdown),
		base: links.Base(meta.Source),
	}
	doc := r.md.Parser().Parse(text.NewReader(p.src))
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		p.block(n)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// pdfPage carries the state shared while laying out one document.
type pdfPage struct {
	pdf  *gofpdf.Fpdf
	tr   func(string) string
	src  []byte
	base *url.URL
}

func (p *pdfPage) block(n ast.Node) {
	switch node := n.(type) {
	case *ast.Heading:
		size, ok := headingSizes[node.Level]
		if !ok {
			size = 10
		}
		p.pdf.Ln(4)
		p.pdf.SetFont("Helvetica", "B", size)
		p.pdf.MultiCell(0, size*0.6, p.tr(plainText(node, p.src)), "", "L", false)
		p.pdf.Ln(2)

	case *ast.Paragraph, *ast.TextBlock:
		p.pdf.SetFont("Helvetica", "", 10)
		p.inline(n, 5)
		p.pdf.Ln(5)
		p.pdf.Ln(3)

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		p.pdf.Ln(2)
		p.pdf.SetFont("Courier", "", 9)
		p.pdf.SetFillColor(245, 245, 245)
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			p.pdf.MultiCell(0, 4.5, p.tr(strings.TrimRight(string(line.Value(p.src)), "\r\n")), "", "L", true)
		}
		p.pdf.Ln(4)

	case *ast.List:
		num := node.Start
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			marker := "• "
			if node.IsOrdered() {
				marker = strconv.Itoa(num) + ". "
				num++
			}
			p.pdf.SetFont("Helvetica", "", 10)
			p.pdf.MultiCell(0, 5, p.tr(marker+plainText(item, p.src)), "", "L", false)
		}
		p.pdf.Ln(3)

	case *ast.ThematicBreak:
		y := p.pdf.GetY() + 2
		p.pdf.Line(10, y, 200, y)
		p.pdf.Ln(6)

	default:
		if s := plainText(n, p.src); s != "" {
			p.pdf.SetFont("Helvetica", "", 10)
			p.pdf.MultiCell(0, 5, p.tr(s), "", "L", false)
			p.pdf.Ln(3)
		}
	}
}

// inline writes the inline children of n as flowing text of line height h.
func (p *pdfPage) inline(n ast.Node, h float64) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			p.pdf.Write(h, p.tr(string(node.Segment.Value(p.src))))
			switch {
			case node.HardLineBreak():
				p.pdf.Ln(h)
			case node.SoftLineBreak():
				p.pdf.Write(h, " ")
			}
		case *ast.String:
			p.pdf.Write(h, p.tr(string(node.Value)))
		case *ast.Link:
			p.link(plainText(node, p.src), string(node.Destination), h)
		case *ast.AutoLink:
			dest := string(node.URL(p.src))
			p.link(string(node.Label(p.src)), dest, h)
		case *ast.CodeSpan:
			p.pdf.SetFont("Courier", "", 9)
			p.pdf.Write(h, p.tr(plainText(node, p.src)))
			p.pdf.SetFont("Helvetica", "", 10)
		default:
			p.inline(c, h)
		}
	}
}

func (p *pdfPage) link(label, href string, h float64) {
	target := links.Resolve(href, p.base)
	if links.Base(target) == nil {
		p.pdf.Write(h, p.tr(label))
		return
	}
	p.pdf.SetTextColor(0, 0, 160)
	p.pdf.WriteLinkString(h, p.tr(label), target)
	p.pdf.SetTextColor(0, 0, 0)
}
