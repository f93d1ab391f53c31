package catalogtest

import "net/http"

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.categories)
}

func (s *Server) listCategorySlugs(w http.ResponseWriter, r *http.Request) {
	slugs := make([]string, 0, len(s.categories))
	for _, c := range s.categories {
		slugs = append(slugs, c.Slug)
	}
	s.writeJSON(w, r, http.StatusOK, slugs)
}
