package utils

import (
	"net/url"
	"strconv"
	"strings"

	"bank-dashboard/pkg/types"
)

// ParseFilterFromQuery разбирает параметры списка строк:
// filter[Колонка]=значение, sort=Колонка или sort=-Колонка (по убыванию),
// sort[Колонка]=asc|desc, limit, page, offset и withPagination.
// Без withPagination=true таблица отдаётся целиком в естественном порядке.
func ParseFilterFromQuery(values url.Values) types.Filter {
	filterReq := types.Filter{
		Sort:   make(map[string]string),
		Filter: make(map[string]interface{}),
		Limit:  DefaultLimit,
		Page:   1,
	}

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			filterReq.Limit = min(l, MaxLimit)
		}
	}

	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			filterReq.Page = p
		}
	}

	filterReq.Offset = (filterReq.Page - 1) * filterReq.Limit
	if offsetStr := values.Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			filterReq.Offset = o
			filterReq.Page = o/filterReq.Limit + 1
		}
	}

	filterReq.WithPagination = values.Get("withPagination") == "true"

	if sort := values.Get("sort"); sort != "" {
		if strings.HasPrefix(sort, "-") {
			filterReq.Sort[sort[1:]] = "desc"
		} else {
			filterReq.Sort[sort] = "asc"
		}
	}

	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}

		if strings.HasPrefix(key, "sort[") && strings.HasSuffix(key, "]") {
			field := key[5 : len(key)-1]
			direction := strings.ToLower(vals[0])
			if direction == "asc" || direction == "desc" {
				filterReq.Sort[field] = direction
			}
			continue
		}

		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") {
			filterReq.Filter[key[7:len(key)-1]] = vals[0]
		}
	}

	return filterReq
}

// KeyFromQuery собирает значения первичного ключа из query-параметров
// для GET/DELETE одной строки. Служебные параметры пропускаются.
func KeyFromQuery(values url.Values, columns []string) map[string]string {
	key := make(map[string]string, len(columns))
	for _, name := range columns {
		if v, ok := values[name]; ok && len(v) > 0 {
			key[name] = v[0]
		}
	}
	return key
}
