// Package page отдаёт демонстрационную HTML-страницу со счётчиком посещений.
package page

import (
	"context"
	"io"
	"strconv"
	"sync/atomic"

	"github.com/a-h/templ"
)

// Counter - счётчик посещений, живущий столько же, сколько процесс.
type Counter struct {
	n atomic.Uint32
}

// Next возвращает текущее значение и увеличивает счётчик. Первый посетитель получает 0.
func (c *Counter) Next() uint32 {
	return c.n.Add(1) - 1
}

// Visit рендерит страницу с номером посещения n.
func Visit(n uint32) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Test page</title></head><body><h1>Test page</h1><p>Visit number `); err != nil {
			return err
		}
		if _, err := io.WriteString(w, templ.EscapeString(strconv.FormatUint(uint64(n), 10))); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</p></body></html>`)
		return err
	})
}

// ErrorHTML - тело ответа, если страницу не удалось отрендерить.
const ErrorHTML = "Error!"
