package catalogtest

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tuanvumaihuynh/catalog-e2e/internal/model"
)

// deletedOnLayout matches the millisecond ISO-8601 stamps upstream emits.
const deletedOnLayout = "2006-01-02T15:04:05.000Z07:00"

type listing struct {
	Products []map[string]json.RawMessage `json:"products"`
	Total    int                          `json:"total"`
	Skip     int                          `json:"skip"`
	Limit    int                          `json:"limit"`
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	s.writeListing(w, r, s.products, defaultLimit)
}

func (s *Server) searchProducts(w http.ResponseWriter, r *http.Request) {
	needle := strings.ToLower(r.URL.Query().Get("q"))

	var hits []model.Product
	for _, p := range s.products {
		text := strings.ToLower(strings.Join([]string{p.Title, p.Description, p.Category, p.BrandOrEmpty()}, " "))
		if strings.Contains(text, needle) {
			hits = append(hits, p)
		}
	}

	s.writeListing(w, r, hits, defaultLimit)
}

func (s *Server) listProductsByCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var hits []model.Product
	for _, p := range s.products {
		if p.Category == slug {
			hits = append(hits, p)
		}
	}

	// category listings are not paged unless asked to be
	s.writeListing(w, r, hits, 0)
}

func (s *Server) writeListing(w http.ResponseWriter, r *http.Request, products []model.Product, fallbackLimit int) {
	lq, msg := parseListQuery(r.URL.Query(), fallbackLimit)
	if msg != "" {
		s.writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	page := lq.window(products)

	out := listing{
		Products: make([]map[string]json.RawMessage, 0, len(page)),
		Total:    len(products),
		Skip:     lq.skip,
		Limit:    lq.limit,
	}
	if lq.limit == 0 {
		out.Limit = len(page)
	}

	for _, p := range page {
		obj, err := project(p, lq.fields)
		if err != nil {
			s.writeError(w, r, http.StatusInternalServerError, err.Error())
			return
		}
		out.Products = append(out.Products, obj)
	}

	s.writeJSON(w, r, http.StatusOK, out)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, r, http.StatusOK, p)
}

func (s *Server) addProduct(w http.ResponseWriter, r *http.Request) {
	fields, ok := s.decodeFields(w, r)
	if !ok {
		return
	}

	// upstream hands every simulated product the next free id
	fields["id"] = json.RawMessage(strconv.Itoa(len(s.products) + 1))

	s.writeJSON(w, r, http.StatusCreated, fields)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}
	fields, ok := s.decodeFields(w, r)
	if !ok {
		return
	}

	merged, err := toObject(p)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	maps.Copy(merged, fields)
	merged["id"] = json.RawMessage(strconv.Itoa(p.ID))

	s.writeJSON(w, r, http.StatusOK, merged)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}

	isDeleted := true
	deletedOn := time.Now().UTC().Format(deletedOnLayout)

	s.writeJSON(w, r, http.StatusOK, model.SingleProductResponse{
		Product:   p,
		IsDeleted: &isDeleted,
		DeletedOn: &deletedOn,
	})
}

// lookup resolves the {id} route parameter or answers 404.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (model.Product, bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.Atoi(raw)
	if err == nil {
		if p, ok := s.byID[id]; ok {
			return p, true
		}
	}

	s.writeError(w, r, http.StatusNotFound, fmt.Sprintf("Product with id '%s' not found", raw))
	return model.Product{}, false
}

// decodeFields reads a JSON object body. The Content-Type header is not
// required, as upstream does not require it either.
func (s *Server) decodeFields(w http.ResponseWriter, r *http.Request) (map[string]json.RawMessage, bool) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Sprintf("Invalid JSON body: %v", err))
		return nil, false
	}
	if fields == nil {
		fields = map[string]json.RawMessage{}
	}
	delete(fields, "id")
	return fields, true
}

func toObject(p model.Product) (map[string]json.RawMessage, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode product %d: %w", p.ID, err)
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, fmt.Errorf("decode product %d: %w", p.ID, err)
	}
	return obj, nil
}

// project keeps id plus the selected fields. An empty selection keeps every
// field; selected fields the product lacks are dropped silently.
func project(p model.Product, fields []string) (map[string]json.RawMessage, error) {
	obj, err := toObject(p)
	if err != nil || len(fields) == 0 {
		return obj, err
	}

	out := map[string]json.RawMessage{"id": obj["id"]}
	for _, f := range fields {
		if v, ok := obj[f]; ok {
			out[f] = v
		}
	}
	return out, nil
}
