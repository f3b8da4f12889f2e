package server

import (
	"net/http"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
)

func queryInt(r *http.Request, key string) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, goerr.Wrap(types.ErrValidationFailed, "invalid integer query parameter",
			goerr.V("key", key),
			goerr.V("value", v),
		)
	}
	return n, nil
}

func pageFrom(r *http.Request) (model.Page, error) {
	page, err := queryInt(r, "page")
	if err != nil {
		return model.Page{}, err
	}
	perPage, err := queryInt(r, "per_page")
	if err != nil {
		return model.Page{}, err
	}
	return model.Page{Page: page, PerPage: perPage}, nil
}

func repoRefFrom(r *http.Request) model.RepoRef {
	q := r.URL.Query()
	return model.RepoRef{
		Owner: q.Get("owner"),
		Repo:  q.Get("repo"),
	}
}
