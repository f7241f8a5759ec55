/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/protdb/internal/iocatalog"
	"github.com/gnames/protdb/internal/iodb"
	"github.com/gnames/protdb/internal/iorcsb"
	"github.com/gnames/protdb/internal/iorest"
	"github.com/gnames/protdb/internal/ioschema"
	"github.com/gnames/protdb/internal/iostore"
	"github.com/gnames/protdb/internal/iouniprot"
	"github.com/gnames/protdb/pkg/catalog"
	"github.com/gnames/protdb/pkg/config"
	"github.com/gnames/protdb/pkg/db"
	"github.com/gnames/protdb/pkg/parserpool"
	"github.com/gnames/protdb/pkg/remote"
)

// session holds everything a catalog command needs. Close releases it.
type session struct {
	op    db.Operator
	names parserpool.Pool
	cat   catalog.Catalog
}

func (s *session) Close() {
	if s.names != nil {
		s.names.Close()
	}
	if s.op != nil {
		_ = s.op.Close()
	}
}

// connect opens the configured database. The default SQLite file lives
// in the data directory.
func connect(ctx context.Context, cfg *config.Config) (db.Operator, error) {
	dbCfg := cfg.Database
	if dbCfg.Type == config.SQLite {
		dbCfg.Path = cfg.DBFilePath()
	}

	op := iodb.NewOperator()
	if err := op.Connect(ctx, &dbCfg); err != nil {
		return nil, err
	}

	if dbCfg.Type == config.SQLite {
		gn.Info("Using catalog <em>%s</em>", dbCfg.Path)
	} else {
		gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
			dbCfg.User, dbCfg.Host, dbCfg.Port, dbCfg.Database)
	}
	return op, nil
}

// openCatalog connects to the database, brings the schema up to date and
// wires the remote sources into a Catalog.
func openCatalog(ctx context.Context, cfg *config.Config) (*session, error) {
	op, err := connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err = ioschema.NewManager(op).Migrate(ctx); err != nil {
		_ = op.Close()
		return nil, err
	}

	client := iorest.New(time.Duration(cfg.Sources.Timeout) * time.Second)
	src := remote.Sources{
		Entries:   iorcsb.NewEntries(client, cfg.Sources.RCSBURL),
		CrossRefs: iorcsb.NewCrossRefs(client, cfg.Sources.RCSBURL),
		Sequences: iouniprot.NewSequences(client, cfg.Sources.UniProtURL),
	}

	names := parserpool.NewPool(cfg.JobsNumber)
	cat := iocatalog.New(iostore.New(op), src, names)
	return &session{op: op, names: names, cat: cat}, nil
}
