// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package main

import (
	"encoding/json"
	"go/ast"
	"io"
	"reflect"

	"mvdan.cc/braces/syntax"
)

var posType = reflect.TypeOf(syntax.Pos(0))

func writeJSON(w io.Writer, word *syntax.Word, pretty bool) error {
	val := reflect.ValueOf(word)
	v, _ := recurse(val, val)
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "\t")
	}
	return enc.Encode(v)
}

func recurse(val, valPtr reflect.Value) (interface{}, string) {
	switch val.Kind() {
	case reflect.Ptr:
		elem := val.Elem()
		if !elem.IsValid() {
			return nil, ""
		}
		return recurse(elem, val)
	case reflect.Interface:
		if val.IsNil() {
			return nil, ""
		}
		v, tname := recurse(val.Elem(), val)
		m := v.(map[string]interface{})
		m["Type"] = tname
		return m, ""
	case reflect.Struct:
		m := make(map[string]interface{}, val.NumField()+2)
		typ := val.Type()
		for i := 0; i < val.NumField(); i++ {
			ftyp := typ.Field(i)
			if ftyp.Type == posType {
				continue
			}
			if !ast.IsExported(ftyp.Name) {
				continue
			}
			fval := val.Field(i)
			if fval.IsZero() {
				continue
			}
			m[ftyp.Name], _ = recurse(fval, fval)
		}
		// use valPtr to find the methods, as they are defined on the
		// pointer values.
		if node, ok := valPtr.Interface().(syntax.Node); ok {
			if pos := node.Pos(); pos.IsValid() {
				m["Pos"] = pos.Offset()
			}
			if end := node.End(); end.IsValid() {
				m["End"] = end.Offset()
			}
		}
		return m, typ.Name()
	case reflect.Slice:
		l := make([]interface{}, val.Len())
		for i := 0; i < val.Len(); i++ {
			elem := val.Index(i)
			l[i], _ = recurse(elem, elem)
		}
		return l, ""
	default:
		return val.Interface(), ""
	}
}
