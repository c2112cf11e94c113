// Package lsp serves parse and lint diagnostics for CSS files over the
// Language Server Protocol.
package lsp

import (
	"github.com/dhamidi/cq/config"
	"github.com/dhamidi/cq/css/analyzer"
	"github.com/dhamidi/cq/css/parser"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "cq"

type Server struct {
	documents *Store
	handler   protocol.Handler
	server    *server.Server
	version   string
	// configPath is the --config flag; empty means look it up from the
	// workspace root.
	configPath string
	log        commonlog.Logger
}

func NewServer(version string, cfg *config.Config) *Server {
	ls := &Server{
		version:    version,
		documents:  NewStore(cfg),
		configPath: cfg.Path,
		log:        commonlog.GetLogger("cq.lsp"),
	}

	ls.handler = protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		Shutdown:               ls.shutdown,
		SetTrace:               ls.setTrace,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentDidSave:    ls.textDocumentDidSave,
		TextDocumentCodeAction: ls.textDocumentCodeAction,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) Documents() *Store {
	return ls.documents
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	if ls.configPath == "" {
		cfg, err := config.Resolve("", rootDir)
		if err != nil {
			ls.log.Warningf("using default configuration: %s", err)
			cfg = config.Default()
		}
		ls.documents.Configure(cfg)
	}

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	ls.log.Info("client initialized")
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := ls.documents.Update(params.TextDocument.URI, params.TextDocument.Version, []byte(params.TextDocument.Text))
	ls.publish(ctx, doc)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		ls.log.Warningf("%s: ignoring incremental change", params.TextDocument.URI)
		return nil
	}
	doc := ls.documents.Update(params.TextDocument.URI, params.TextDocument.Version, []byte(textChange.Text))
	ls.publish(ctx, doc)
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.documents.Remove(params.TextDocument.URI)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text == nil {
		return nil
	}
	version := int32(0)
	if doc := ls.documents.Get(params.TextDocument.URI); doc != nil {
		version = doc.Version
	}
	doc := ls.documents.Update(params.TextDocument.URI, version, []byte(*params.Text))
	ls.publish(ctx, doc)
	return nil
}

func (ls *Server) publish(ctx *glsp.Context, doc *Document) {
	ls.log.Debugf("%s: %d syntax errors, %d findings", doc.Path, len(doc.Diagnostics), len(doc.Findings))
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         doc.URI,
		Diagnostics: diagnostics(doc),
	})
}

const source = "cq"

func diagnostics(doc *Document) []protocol.Diagnostic {
	result := make([]protocol.Diagnostic, 0, len(doc.Diagnostics)+len(doc.Findings))
	for _, d := range doc.Diagnostics {
		result = append(result, syntaxDiagnostic(doc.Text, d))
	}
	for _, f := range doc.Findings {
		result = append(result, findingDiagnostic(doc.Text, f))
	}
	return result
}

func syntaxDiagnostic(text []byte, d parser.Diagnostic) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	src := source
	return protocol.Diagnostic{
		Range:    toRange(text, d.Span),
		Severity: &severity,
		Source:   &src,
		Message:  d.Message,
	}
}

func findingDiagnostic(text []byte, f analyzer.Finding) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityWarning
	if f.Severity == analyzer.SeverityError {
		severity = protocol.DiagnosticSeverityError
	}
	src := source
	return protocol.Diagnostic{
		Range:    toRange(text, f.Span),
		Severity: &severity,
		Code:     &protocol.IntegerOrString{Value: f.Rule},
		Source:   &src,
		Message:  f.Message,
	}
}
