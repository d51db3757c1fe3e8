package gen

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"json-typegen/internal/diagnostic"
	"json-typegen/internal/hints"
	"json-typegen/internal/shape"
	"json-typegen/options"
)

// typeScriptTypeAlias renders shapes as TypeScript type aliases:
//
//	export type Root = {
//	    id: number;
//	    name?: string | undefined;
//	};
type typeScriptTypeAlias struct{}

func (typeScriptTypeAlias) Mode() options.OutputMode {
	return options.OutputTypeScriptTypeAlias
}

func (b typeScriptTypeAlias) Declare(ctx *Context, name string, s shape.Shape, idx *hints.Index) Output {
	code := b.typeFromShape(ctx, s, idx)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("export type %s = %s;\n\n", name, code))

	for _, d := range ctx.declarations {
		sb.WriteString(fmt.Sprintf("export type %s = %s;\n\n", d.name, d.code))
	}

	return Output{Ident: name, Code: sb.String()}
}

// typeFromShape applies the winning hint at this node, if any, and renders s otherwise.
func (b typeScriptTypeAlias) typeFromShape(ctx *Context, s shape.Shape, idx *hints.Index) string {
	if code, ok := b.applyHint(ctx, s, idx); ok {
		return code
	}

	return b.renderShape(ctx, s, idx)
}

func (b typeScriptTypeAlias) renderShape(ctx *Context, s shape.Shape, idx *hints.Index) string {
	switch s.Kind {
	case shape.KindNull, shape.KindAny, shape.KindBottom:
		return "any"
	case shape.KindBool:
		return "boolean"
	case shape.KindString:
		return "string"
	case shape.KindInteger, shape.KindFloating:
		return "number"
	case shape.KindTuple:
		folded := shape.Fold(s.Elems)
		if folded.IsUnconstrained() && !allUnconstrained(s.Elems) {
			return b.tupleType(ctx, s.Elems, idx)
		}

		return b.vecType(ctx, folded, idx)
	case shape.KindVec:
		return b.vecType(ctx, s.Inner(), idx)
	case shape.KindStruct:
		return b.structType(ctx, s.Fields, idx)
	case shape.KindMap:
		return b.mapType(ctx, s.Inner(), idx)
	case shape.KindOpaque:
		return s.Name
	case shape.KindOptional:
		// Hints that did not apply to the optional itself may still apply to the inner shape.
		inner := b.typeFromShape(ctx, s.Inner(), idx)
		if ctx.Options.UseDefaultForMissingFields {
			return inner
		}

		return inner + " | undefined"
	default:
		panic(fmt.Sprintf("unhandled shape kind %s", s.Kind))
	}
}

func (b typeScriptTypeAlias) vecType(ctx *Context, elem shape.Shape, idx *hints.Index) string {
	defer ctx.enter(hints.Wildcard)()

	return "Array<" + b.typeFromShape(ctx, elem, idx.StepArray()) + ">"
}

func (b typeScriptTypeAlias) mapType(ctx *Context, value shape.Shape, idx *hints.Index) string {
	defer ctx.enter("*")()

	return "{ [key: string]: " + b.typeFromShape(ctx, value, idx.StepAny()) + " }"
}

func (b typeScriptTypeAlias) tupleType(ctx *Context, elems []shape.Shape, idx *hints.Index) string {
	types := make([]string, 0, len(elems))

	for i, elem := range elems {
		restore := ctx.enter(strconv.Itoa(i))
		types = append(types, b.typeFromShape(ctx, elem, idx.StepIndex(i)))
		restore()
	}

	return "[" + strings.Join(types, ", ") + "]"
}

func (b typeScriptTypeAlias) structType(ctx *Context, fields []shape.Field, idx *hints.Index) string {
	lines := make([]string, 0, len(fields))

	for _, f := range fields {
		wasOptional, collapsed := shape.Collapse(f.Shape)

		restore := ctx.enter(f.Name)
		ctx.indentLevel++
		fieldType := b.typeFromShape(ctx, collapsed, idx.StepField(f.Name))
		ctx.indentLevel--
		restore()

		name := f.Name
		if !isTSIdentifier(name) {
			name = quoteKey(name)
		}

		marker := ""
		if wasOptional {
			marker = "?"

			// A nested optional has already been unioned with undefined.
			if !ctx.Options.UseDefaultForMissingFields && collapsed.Kind != shape.KindOptional {
				fieldType += " | undefined"
			}
		}

		lines = append(lines, fmt.Sprintf("%s%s%s: %s;", ctx.indent(), name, marker, fieldType))
	}

	if len(lines) == 0 {
		return "{}"
	}

	ctx.indentLevel--
	closing := ctx.indent()
	ctx.indentLevel++

	return "{\n" + strings.Join(lines, "\n") + "\n" + closing + "}"
}

// applyHint renders s according to the first registered hint that fits it.
// It reports false when no hint applies, leaving s to the regular rendering.
func (b typeScriptTypeAlias) applyHint(ctx *Context, s shape.Shape, idx *hints.Index) (string, bool) {
	candidates := idx.Applicable()

	for i, handle := range candidates {
		hint := ctx.hints.Get(handle)

		if hint.Type == hints.UseMap && s.Kind != shape.KindStruct && s.Kind != shape.KindMap {
			// The inner shape of an optional sees the same hints and decides.
			if s.Kind == shape.KindOptional {
				return "", false
			}

			ctx.diagnostics.AddInfo(diagnostic.CodeHintInapplicable,
				fmt.Sprintf("use_map does not apply to %s", s.Kind.Keyword()), hint.Pointer)

			continue
		}

		ctx.hints.MarkUsed(handle)
		reportShadowed(ctx, hint, candidates[i+1:])

		ctx.logger.Debug("applying hint",
			zap.String("pointer", ctx.pointer),
			zap.Stringer("hint", hint.Type),
			zap.String("name", hint.Name))

		return b.renderHint(ctx, hint, s, idx), true
	}

	return "", false
}

func (b typeScriptTypeAlias) renderHint(ctx *Context, hint hints.Hint, s shape.Shape, idx *hints.Index) string {
	switch hint.Type {
	case hints.UseType:
		return hint.Name

	case hints.UseMap:
		value := s.Inner()
		if s.Kind == shape.KindStruct {
			value = foldFields(s.Fields)
		}

		if hint.Name == "" {
			return b.mapType(ctx, value, idx)
		}

		defer ctx.enter("*")()

		return hint.Name + "<string, " + b.typeFromShape(ctx, value, idx.StepAny()) + ">"

	case hints.UseName:
		if ctx.declared(hint.Name) {
			return hint.Name
		}

		pos := len(ctx.declarations)
		ctx.declarations = append(ctx.declarations, declaration{name: hint.Name})

		saved := ctx.indentLevel
		ctx.indentLevel = 1
		ctx.declarations[pos].code = b.renderShape(ctx, s, idx.Pending())
		ctx.indentLevel = saved

		return hint.Name

	default:
		panic(fmt.Sprintf("unhandled hint type %s", hint.Type))
	}
}

func reportShadowed(ctx *Context, winner hints.Hint, losers []hints.Handle) {
	for _, h := range losers {
		loser := ctx.hints.Get(h)

		ctx.diagnostics.AddWarning(diagnostic.CodeHintShadowed,
			fmt.Sprintf("%s %q shadowed by %s %q registered earlier for the same node",
				loser.Type, loser.Name, winner.Type, winner.Name),
			loser.Pointer)
	}
}

func foldFields(fields []shape.Field) shape.Shape {
	shapes := make([]shape.Shape, 0, len(fields))
	for _, f := range fields {
		shapes = append(shapes, f.Shape)
	}

	return shape.Fold(shapes)
}

func allUnconstrained(shapes []shape.Shape) bool {
	for _, s := range shapes {
		if !s.IsUnconstrained() {
			return false
		}
	}

	return true
}

// quoteKey renders name as a string literal. JSON escapes are a subset of
// the JavaScript ones, so the key reads back unchanged.
func quoteKey(name string) string {
	var sb strings.Builder

	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(name)

	return strings.TrimSuffix(sb.String(), "\n")
}

// isTSIdentifier reports whether s can be used as a bare property name.
func isTSIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			// First character must be letter, underscore or dollar sign
			if !isLetter(r) && r != '_' && r != '$' {
				return false
			}
		} else if !isLetter(r) && !isDigit(r) && r != '_' && r != '$' {
			return false
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
