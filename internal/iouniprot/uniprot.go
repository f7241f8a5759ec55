// Package iouniprot implements the sequence fetcher backed by the
// UniProtKB REST API.
package iouniprot

import (
	"context"
	"strings"

	"github.com/gnames/gnlib"
	"github.com/gnames/protdb/internal/iorest"
	"github.com/gnames/protdb/pkg/remote"
)

type entryJSON struct {
	Sequence struct {
		Value string `json:"value"`
	} `json:"sequence"`
	Comments []struct {
		CommentType string `json:"commentType"`
		Texts       []struct {
			Value string `json:"value"`
		} `json:"texts"`
	} `json:"comments"`
}

type sequences struct {
	client  *iorest.Client
	baseURL string
}

// NewSequences creates a fetcher of sequence records keyed by UniProt
// accession. baseURL is for example https://rest.uniprot.org/uniprotkb.
func NewSequences(
	client *iorest.Client,
	baseURL string,
) remote.Fetcher[remote.SequenceRecord] {
	return &sequences{client: client, baseURL: baseURL}
}

// Fetch reads GET {base}/{id}.json. Records without a sequence (obsolete
// entries, for example) are reported as not found.
func (s *sequences) Fetch(
	ctx context.Context,
	id string,
) (remote.SequenceRecord, error) {
	var res remote.SequenceRecord
	var data entryJSON

	url := iorest.JoinURL(s.baseURL, id+".json")
	if err := s.client.GetJSON(ctx, url, &data); err != nil {
		return res, err
	}

	res.Sequence = strings.TrimSpace(data.Sequence.Value)
	if res.Sequence == "" {
		return res, iorest.NoSequenceError(url)
	}

	res.Function = remote.NoFunction
	for _, c := range data.Comments {
		if c.CommentType != "FUNCTION" {
			continue
		}
		if len(c.Texts) > 0 && c.Texts[0].Value != "" {
			res.Function = strings.TrimSpace(gnlib.FixUtf8(c.Texts[0].Value))
		}
		break
	}
	return res, nil
}
