package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"json-typegen/internal/diagnostic"
	"json-typegen/internal/hints"
	"json-typegen/internal/shape"
	"json-typegen/options"
)

func withHints(specs ...hints.Spec) options.Options {
	opts := options.Default()
	opts.Hints = specs

	return opts
}

func warningPointers(diags diagnostic.Diagnostics) []string {
	var pointers []string
	for _, w := range diags.Warnings {
		pointers = append(pointers, w.Pointer)
	}

	return pointers
}

func TestHints_UseType(t *testing.T) {
	s := shape.Struct(
		field("created", shape.Optional(shape.StringT())),
		field("tags", shape.Vec(shape.StringT())),
	)

	out, diags := generate(t, s, withHints(
		hints.Spec{Pointer: "/created", UseType: strPtr("Date")},
		hints.Spec{Pointer: "/tags/-", UseType: strPtr("Tag")},
	))

	assertCode(t, `export type Root = {
    created?: Date | undefined;
    tags: Array<Tag>;
};

`, out)
	assert.Empty(t, diags.Warnings)
	assert.Empty(t, diags.Infos)
}

func TestHints_UseTypeAtRoot(t *testing.T) {
	out, diags := generate(t, shape.Struct(field("a", shape.Integer())), withHints(
		hints.Spec{Pointer: "", UseType: strPtr("External")},
	))

	assertCode(t, "export type Root = External;\n\n", out)
	assert.Empty(t, diags.Warnings)
}

func TestHints_UseTypeOnOptionalElement(t *testing.T) {
	s := shape.Vec(shape.Optional(shape.Integer()))

	out, _ := generate(t, s, withHints(hints.Spec{Pointer: "/-", UseType: strPtr("Id")}))

	assertCode(t, "export type Root = Array<Id>;\n\n", out)
}

func TestHints_UseMap(t *testing.T) {
	s := shape.Struct(
		field("labels", shape.Struct(
			field("en", shape.StringT()),
			field("de", shape.StringT()),
		)),
		field("counts", shape.Struct(
			field("a", shape.Integer()),
			field("b", shape.Floating()),
		)),
		field("extra", shape.Optional(shape.Map(shape.Bool()))),
	)

	out, diags := generate(t, s, withHints(
		hints.Spec{Pointer: "/labels", UseMap: strPtr("")},
		hints.Spec{Pointer: "/counts", UseMap: strPtr("Record")},
		hints.Spec{Pointer: "/extra", UseMap: strPtr("Map")},
	))

	assertCode(t, `export type Root = {
    labels: { [key: string]: string };
    counts: Record<string, number>;
    extra?: Map<string, boolean> | undefined;
};

`, out)
	assert.Empty(t, diags.Warnings)
}

func TestHints_UseMapValueHints(t *testing.T) {
	s := shape.Struct(field("users", shape.Struct(
		field("alice", shape.Struct(field("id", shape.Integer()))),
		field("bob", shape.Struct(field("id", shape.Integer()))),
	)))

	out, diags := generate(t, s, withHints(
		hints.Spec{Pointer: "/users", UseMap: strPtr("")},
		hints.Spec{Pointer: "/users/any/id", UseType: strPtr("UserId")},
	))

	assertCode(t, `export type Root = {
    users: { [key: string]: {
        id: UserId;
    } };
};

`, out)
	assert.Empty(t, diags.Warnings)
}

func TestHints_UseMapInapplicable(t *testing.T) {
	out, diags := generate(t, shape.Struct(field("name", shape.StringT())), withHints(
		hints.Spec{Pointer: "/name", UseMap: strPtr("")},
	))

	assertCode(t, "export type Root = {\n    name: string;\n};\n\n", out)
	assert.Equal(t, []string{"/name"}, warningPointers(diags))
	require.Len(t, diags.Infos, 1)
	assert.Equal(t, diagnostic.CodeHintInapplicable, diags.Infos[0].Code)
	assert.Equal(t, "use_map does not apply to string", diags.Infos[0].Message)
}

func TestHints_InapplicableHintYieldsToNext(t *testing.T) {
	t.Run("scalar", func(t *testing.T) {
		out, diags := generate(t, shape.Struct(field("tag", shape.StringT())), withHints(
			hints.Spec{Pointer: "/tag", UseMap: strPtr("")},
			hints.Spec{Pointer: "/tag", UseType: strPtr("Tag")},
			hints.Spec{Pointer: "/tag", UseName: strPtr("Later")},
		))

		assertCode(t, "export type Root = {\n    tag: Tag;\n};\n\n", out)

		require.Len(t, diags.Warnings, 3)
		assert.Equal(t, diagnostic.CodeHintShadowed, diags.Warnings[0].Code)
		assert.Equal(t, `use_name "Later" shadowed by use_type "Tag" registered earlier for the same node`,
			diags.Warnings[0].Message)
		assert.Equal(t, diagnostic.CodeHintUnused, diags.Warnings[1].Code)
		assert.Contains(t, diags.Warnings[1].Message, "use_map")
		assert.Equal(t, diagnostic.CodeHintUnused, diags.Warnings[2].Code)
		assert.Contains(t, diags.Warnings[2].Message, `"Later"`)

		require.Len(t, diags.Infos, 1)
		assert.Equal(t, diagnostic.CodeHintInapplicable, diags.Infos[0].Code)
	})

	t.Run("optional defers to inner map", func(t *testing.T) {
		s := shape.Struct(field("extra", shape.Optional(shape.Map(shape.Bool()))))

		out, diags := generate(t, s, withHints(
			hints.Spec{Pointer: "/extra", UseMap: strPtr("Record")},
			hints.Spec{Pointer: "/extra", UseType: strPtr("Extra")},
		))

		assertCode(t, "export type Root = {\n    extra?: Record<string, boolean> | undefined;\n};\n\n", out)
		assert.Equal(t, []string{"/extra", "/extra"}, warningPointers(diags))
		assert.Equal(t, diagnostic.CodeHintShadowed, diags.Warnings[0].Code)
		assert.Empty(t, diags.Infos)
	})
}

func TestHints_UseName(t *testing.T) {
	s := shape.Struct(
		field("items", shape.Vec(shape.Struct(
			field("id", shape.Integer()),
			field("owner", shape.Struct(field("name", shape.StringT()))),
		))),
		field("main", shape.Optional(shape.Struct(
			field("owner", shape.Struct(field("name", shape.StringT()))),
		))),
	)

	out, diags := generate(t, s, withHints(
		hints.Spec{Pointer: "/items/-", UseName: strPtr("Item")},
		hints.Spec{Pointer: "/items/-/owner", UseName: strPtr("Owner")},
		hints.Spec{Pointer: "/main/owner", UseName: strPtr("Owner")},
	))

	assertCode(t, `export type Root = {
    items: Array<Item>;
    main?: {
        owner: Owner;
    } | undefined;
};

export type Item = {
    id: number;
    owner: Owner;
};

export type Owner = {
    name: string;
};

`, out)
	assert.Empty(t, diags.Warnings)
}

func TestHints_UseNameOnOptionalElement(t *testing.T) {
	s := shape.Vec(shape.Optional(shape.Struct(field("x", shape.Integer()))))

	out, _ := generate(t, s, withHints(hints.Spec{Pointer: "/-", UseName: strPtr("Point")}))

	assertCode(t, `export type Root = Array<Point>;

export type Point = {
    x: number;
} | undefined;

`, out)
}

func TestHints_TupleIndexVersusWildcard(t *testing.T) {
	mixed := shape.Struct(field("pair", shape.Tuple(shape.StringT(), shape.Integer())))
	same := shape.Struct(field("pair", shape.Tuple(shape.StringT(), shape.StringT())))

	t.Run("index on heterogeneous tuple", func(t *testing.T) {
		out, diags := generate(t, mixed, withHints(hints.Spec{Pointer: "/pair/1", UseType: strPtr("Count")}))

		assertCode(t, "export type Root = {\n    pair: [string, Count];\n};\n\n", out)
		assert.Empty(t, diags.Warnings)
	})

	t.Run("wildcard never matches a tuple position", func(t *testing.T) {
		out, diags := generate(t, mixed, withHints(hints.Spec{Pointer: "/pair/-", UseType: strPtr("X")}))

		assertCode(t, "export type Root = {\n    pair: [string, number];\n};\n\n", out)
		assert.Equal(t, []string{"/pair/-"}, warningPointers(diags))
		assert.Equal(t, diagnostic.CodeHintUnused, diags.Warnings[0].Code)
	})

	t.Run("wildcard on collapsed tuple", func(t *testing.T) {
		out, diags := generate(t, same, withHints(hints.Spec{Pointer: "/pair/-", UseType: strPtr("Name")}))

		assertCode(t, "export type Root = {\n    pair: Array<Name>;\n};\n\n", out)
		assert.Empty(t, diags.Warnings)
	})

	t.Run("index on collapsed tuple", func(t *testing.T) {
		out, _ := generate(t, same, withHints(hints.Spec{Pointer: "/pair/0", UseType: strPtr("Name")}))

		assertCode(t, "export type Root = {\n    pair: Array<Name>;\n};\n\n", out)
	})
}

func TestHints_RegistrationOrderWins(t *testing.T) {
	s := shape.Struct(field("a", shape.StringT()))

	out, diags := generate(t, s, withHints(
		hints.Spec{Pointer: "/a", UseType: strPtr("First")},
		hints.Spec{Pointer: "/a", UseType: strPtr("Second")},
	))

	assertCode(t, "export type Root = {\n    a: First;\n};\n\n", out)

	require.Len(t, diags.Warnings, 2)
	assert.Equal(t, diagnostic.CodeHintShadowed, diags.Warnings[0].Code)
	assert.Equal(t, "/a", diags.Warnings[0].Pointer)
	assert.Equal(t, diagnostic.CodeHintUnused, diags.Warnings[1].Code)
	assert.Contains(t, diags.Warnings[1].Message, `"Second"`)
	assert.Empty(t, diags.Infos)
}

func TestHints_SiblingSubtreesIndependent(t *testing.T) {
	inner := shape.Struct(field("id", shape.Integer()))
	s := shape.Struct(field("left", inner), field("right", inner))

	out, _ := generate(t, s, withHints(hints.Spec{Pointer: "/right/id", UseType: strPtr("RightId")}))

	assertCode(t, `export type Root = {
    left: {
        id: number;
    };
    right: {
        id: RightId;
    };
};

`, out)
}

func TestHints_UnusedReported(t *testing.T) {
	out, diags := generate(t, shape.Struct(field("a", shape.Integer())), withHints(
		hints.Spec{Pointer: "/nope", UseType: strPtr("X")},
		hints.Spec{Pointer: "/a/deeper", UseType: strPtr("Y")},
	))

	assertCode(t, "export type Root = {\n    a: number;\n};\n\n", out)
	assert.Equal(t, []string{"/nope", "/a/deeper"}, warningPointers(diags))
	assert.False(t, diags.HasErrors())
}

func TestHints_MalformedPointerAborts(t *testing.T) {
	_, _, err := NewGenerator(DefaultGeneratorConfig()).GenerateFromOptions("Root", shape.Bool(), withHints(
		hints.Spec{Pointer: "a/b", UseType: strPtr("X")},
	))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "registering hints")
}

func TestHints_InvalidSpecsReported(t *testing.T) {
	_, diags, err := NewGenerator(DefaultGeneratorConfig()).GenerateFromOptions("Root", shape.Bool(), withHints(
		hints.Spec{Pointer: "a/b", UseType: strPtr("X")},
		hints.Spec{Pointer: "/ok", UseType: strPtr("Y")},
		hints.Spec{Pointer: "/c"},
	))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"a/b": [HINT_INVALID]`)

	require.True(t, diags.HasErrors())
	require.Len(t, diags.Errors, 2)
	assert.Equal(t, diagnostic.CodeHintInvalid, diags.Errors[0].Code)
	assert.Equal(t, "a/b", diags.Errors[0].Pointer)
	assert.Equal(t, "/c", diags.Errors[1].Pointer)
	assert.Contains(t, diags.Errors[1].Message, "exactly one")
	assert.Empty(t, diags.Warnings)
}

func TestGenerate_WithExplicitIndex(t *testing.T) {
	set := hints.NewSet()
	idx := hints.NewIndex()
	idx.MustAdd("/a", set.Add(hints.Hint{Type: hints.UseType, Name: "A", Pointer: "/a"}))

	s := shape.Struct(field("a", shape.Integer()), field("b", shape.Integer()))

	out, diags, err := NewGenerator(DefaultGeneratorConfig()).Generate("Root", s, options.Default(), set, idx)
	require.NoError(t, err)

	assertCode(t, "export type Root = {\n    a: A;\n    b: number;\n};\n\n", out)
	assert.True(t, set.Get(0).Used)
	assert.Empty(t, diags.Warnings)

	out, _, err = NewGenerator(DefaultGeneratorConfig()).Generate("Root", s, options.Default(), nil, nil)
	require.NoError(t, err)
	assertCode(t, "export type Root = {\n    a: number;\n    b: number;\n};\n\n", out)
}

func TestGenerate_LogsAppliedHints(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	generator := NewGenerator(GeneratorConfig{Logger: zap.New(core)})

	s := shape.Struct(field("items", shape.Vec(shape.Struct(field("a/b", shape.Integer())))))

	_, _, err := generator.GenerateFromOptions("Root", s, withHints(
		hints.Spec{Pointer: "/items/-/a~1b", UseType: strPtr("X")},
	))
	require.NoError(t, err)

	entries := logs.FilterMessage("applying hint").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/items/-/a~1b", entries[0].ContextMap()["pointer"])
	assert.Equal(t, "Root", entries[0].ContextMap()["type"])
}
