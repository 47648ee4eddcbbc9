package formats

import (
	"io"

	"github.com/valyala/fastjson"

	"github.com/typelens/typelens/typelens"
)

type JSONFormatter struct {
	buf   []byte
	arena *fastjson.Arena
	w     io.Writer
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{
		buf:   make([]byte, 0, 1024),
		arena: new(fastjson.Arena),
		w:     w,
	}
}

// Format writes the schema as a JSON array of {name, type} objects,
// preserving column order.
func (t *JSONFormatter) Format(columns []typelens.Column) error {
	arr := t.arena.NewArray()
	for i := range columns {
		obj := t.arena.NewObject()
		obj.Set("name", t.arena.NewString(columns[i].Name))
		obj.Set("type", t.arena.NewString(columns[i].Type.String()))
		arr.SetArrayItem(i, obj)
	}

	t.buf = arr.MarshalTo(t.buf)
	t.buf = append(t.buf, '\n')
	if _, err := t.w.Write(t.buf); err != nil {
		return err
	}
	t.buf = t.buf[:0]
	t.arena.Reset()
	return nil
}
