package server

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/dhamidi/wls/ejbjar"
	"github.com/dhamidi/wls/format"
)

type validateResponse struct {
	Root      string         `json:"root"`
	Valid     bool           `json:"valid"`
	Events    []ejbjar.Event `json:"events"`
	PublicIDs []string       `json:"publicIds"`
}

type checkResponse struct {
	Root     string           `json:"root"`
	Findings []ejbjar.Finding `json:"findings"`
}

type elementsResponse struct {
	Elements []string `json:"elements"`
	Roots    []string `json:"roots"`
}

type elementResponse struct {
	Name     string   `json:"name"`
	Root     bool     `json:"root"`
	Children []string `json:"children"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readDescriptor(w, r)
	if !ok {
		return
	}
	doc, ok := s.decode(w, data, s.opts.Validate)
	if !ok {
		return
	}

	name := "json"
	if acceptsYAML(r.Header.Get("Accept")) {
		name = "yaml"
	}
	var buf bytes.Buffer
	enc, err := format.New(name, &buf)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := enc.Encode(doc); err != nil {
		http.Error(w, "encode: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", format.ContentType(name))
	w.Write(buf.Bytes())
}

// handleNormalize buffers the whole canonical document so that its length
// and entity tag are known before the status line is written.
func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readDescriptor(w, r)
	if !ok {
		return
	}
	doc, ok := s.decode(w, data, false)
	if !ok {
		return
	}

	var buf bytes.Buffer
	enc := format.NewXMLEncoder(&buf)
	enc.Namespace = s.opts.Namespace
	if err := enc.Encode(doc); err != nil {
		http.Error(w, "encode: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", format.ContentType("xml"))
	h.Set("Content-Length", strconv.Itoa(buf.Len()))
	h.Set("ETag", entityTag(buf.Bytes()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readDescriptor(w, r)
	if !ok {
		return
	}
	doc, ok := s.decode(w, data, true)
	if !ok {
		return
	}
	if !ejbjar.IsRoot(doc.Root) {
		http.Error(w, ejbjar.ErrNoSchema.Error()+": <"+doc.Root+">", http.StatusUnprocessableEntity)
		return
	}

	resp := validateResponse{
		Root:      doc.Root,
		Valid:     doc.Valid(),
		Events:    doc.Events,
		PublicIDs: doc.PublicIDs,
	}
	if resp.Events == nil {
		resp.Events = []ejbjar.Event{}
	}
	if resp.PublicIDs == nil {
		resp.PublicIDs = []string{}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readDescriptor(w, r)
	if !ok {
		return
	}
	doc, ok := s.decode(w, data, false)
	if !ok {
		return
	}

	findings := ejbjar.Check(doc.Value)
	if findings == nil {
		findings = []ejbjar.Finding{}
	}
	writeJSON(w, http.StatusOK, checkResponse{Root: doc.Root, Findings: findings})
}

func (s *Server) handleElements(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, elementsResponse{
		Elements: ejbjar.ElementNames(),
		Roots:    ejbjar.RootElements(),
	})
}

func (s *Server) handleElement(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if _, ok := ejbjar.NewElement(name); !ok {
		http.Error(w, "element not found", http.StatusNotFound)
		return
	}
	children := ejbjar.ChildElements(name)
	if children == nil {
		children = []string{}
	}
	writeJSON(w, http.StatusOK, elementResponse{
		Name:     name,
		Root:     ejbjar.IsRoot(name),
		Children: children,
	})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	src, err := s.validator.Schema(r.PathValue("root"))
	if errors.Is(err, ejbjar.ErrNoSchema) {
		http.Error(w, "schema not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	etag := entityTag(src)
	w.Header().Set("ETag", etag)
	if matchesETag(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", format.ContentType("xml"))
	w.Header().Set("Content-Length", strconv.Itoa(len(src)))
	w.Write(src)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok\n")
}

// readDescriptor enforces the XML content type and the body limit.
func (s *Server) readDescriptor(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if !isXML(r.Header.Get("Content-Type")) {
		http.Error(w, "content type must be application/xml", http.StatusUnsupportedMediaType)
		return nil, false
	}

	body := http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes)
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return nil, false
		}
		http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return data, true
}

func (s *Server) decode(w http.ResponseWriter, data []byte, validate bool) (*ejbjar.Document, bool) {
	opts := []ejbjar.DecodeOption{ejbjar.WithNamespace(s.opts.Namespace)}
	if validate {
		opts = append(opts, ejbjar.WithValidation(s.validator))
	}

	doc, err := ejbjar.NewDecoder(bytes.NewReader(data), opts...).DecodeDocument()
	switch {
	case err == nil:
		return doc, true
	case errors.Is(err, ejbjar.ErrUnknownElement), errors.Is(err, ejbjar.ErrChoiceConflict):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
	return nil, false
}

func isXML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/xml" || mediaType == "text/xml" || strings.HasSuffix(mediaType, "+xml")
}

func acceptsYAML(accept string) bool {
	for _, part := range strings.Split(accept, ",") {
		mediaType, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		switch mediaType {
		case "application/yaml", "application/x-yaml", "text/yaml":
			return true
		}
	}
	return false
}

func entityTag(data []byte) string {
	sum := sha256.Sum256(data)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

func matchesETag(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("write response: %s", err)
	}
}
