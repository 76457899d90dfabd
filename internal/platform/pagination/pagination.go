package pagination

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

var (
	ErrInvalidPage    = errors.New("page and limit must be positive integers")
	ErrPageOutOfRange = errors.New("page and limit are too large")
)

// Page es una ventana (skip/limit) sobre el orden natural de inserción.
type Page struct {
	Number int
	Limit  int
}

// New valida número de página y límite. Ambos deben ser >= 1 y
// number*limit tiene que entrar en un int, así Offset()+Limit nunca desborda.
func New(number, limit int) (Page, error) {
	if number < 1 || limit < 1 {
		return Page{}, ErrInvalidPage
	}
	if number > math.MaxInt/limit {
		return Page{}, ErrPageOutOfRange
	}
	return Page{Number: number, Limit: limit}, nil
}

// Parse interpreta los valores crudos del querystring.
// Vacío => default; cualquier cosa que no sea un entero base 10 >= 1 => ErrInvalidPage.
func Parse(pageRaw, limitRaw string) (Page, error) {
	number, err := parseOr(pageRaw, DefaultPage)
	if err != nil {
		return Page{}, err
	}
	limit, err := parseOr(limitRaw, DefaultLimit)
	if err != nil {
		return Page{}, err
	}
	return New(number, limit)
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

func parseOr(raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidPage
	}
	return n, nil
}
