package wordnet

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/standardbeagle/rolex/internal/corpus"
	rolexerrors "github.com/standardbeagle/rolex/internal/errors"
	"github.com/standardbeagle/rolex/internal/security"
)

// Relation type that produces a hypernym edge. Other ILR types are ignored.
const hypernymRelation = "hypernym"

// rownSynset mirrors one <SYNSET> element of the Romanian WordNet export:
//
//	<SYNSET>
//	  <ID>ENG30-03791235-n</ID>
//	  <SYNONYM><LITERAL>mașină<SENSE>1</SENSE></LITERAL></SYNONYM>
//	  <ILR>ENG30-03100490-n<TYPE>hypernym</TYPE></ILR>
//	</SYNSET>
type rownSynset struct {
	ID        string         `xml:"ID"`
	Literals  []rownLiteral  `xml:"SYNONYM>LITERAL"`
	Relations []rownRelation `xml:"ILR"`
}

type rownLiteral struct {
	Text  string `xml:",chardata"`
	Sense string `xml:"SENSE"`
}

type rownRelation struct {
	Target string `xml:",chardata"`
	Type   string `xml:"TYPE"`
}

func (s rownSynset) synset() Synset {
	out := Synset{ID: s.ID}
	for _, lit := range s.Literals {
		out.Literals = append(out.Literals, lit.Text)
	}
	for _, rel := range s.Relations {
		if strings.EqualFold(strings.TrimSpace(rel.Type), hypernymRelation) {
			out.Hypernyms = append(out.Hypernyms, rel.Target)
		}
	}
	return out
}

// LoadRoWN reads a RoWN XML file and builds the graph.
func LoadRoWN(path string) (*Graph, *corpus.Report, error) {
	if err := security.ValidateCorpusFile(path, corpus.Synsets); err != nil {
		return nil, nil, rolexerrors.NewCorpusError(corpus.Synsets, path, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, rolexerrors.NewCorpusError(corpus.Synsets, path, err)
	}
	defer f.Close()
	return ReadRoWN(f, path)
}

// ReadRoWN decodes <SYNSET> elements from r at any depth. A syntax error
// ends the scan with a diagnostic; the synsets decoded before it are kept.
func ReadRoWN(r io.Reader, name string) (*Graph, *corpus.Report, error) {
	report := corpus.NewReport(corpus.Synsets, name)
	records, err := decodeRoWN(r)
	if err != nil {
		report.Skip(rolexerrors.NewCorpusError(corpus.Synsets, name, err))
	}
	g, err := Build(records, report)
	if err != nil {
		return nil, report, err
	}
	return g, report, nil
}

func decodeRoWN(r io.Reader) ([]Synset, error) {
	dec := xml.NewDecoder(r)
	var records []Synset
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "SYNSET" {
			continue
		}
		line, _ := dec.InputPos()
		var raw rownSynset
		if err := dec.DecodeElement(&raw, &start); err != nil {
			return records, fmt.Errorf("synset starting at line %d: %w", line, err)
		}
		records = append(records, raw.synset())
	}
}
