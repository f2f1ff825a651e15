package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankitools/photoroster/internal/store"
)

func TestMergeImportsAppendsKnownTags(t *testing.T) {
	existing := store.Records{
		"123-456-789": {Tags: "MATH115A1-LEC-Fall-2013"},
	}
	in := strings.NewReader(
		`123-456-789;<img src="a.jpg">;John Smith;John Smith;CS32-1-Fall-2013` + "\n" +
			`987-654-321;<img src="b.jpg">;Anna Lee;Anna Lee;CS32-1-Fall-2013` + "\n")
	var out bytes.Buffer

	require.NoError(t, MergeImports(existing, in, &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		`123-456-789;<img src="a.jpg">;John Smith;John Smith;CS32-1-Fall-2013 MATH115A1-LEC-Fall-2013`,
		lines[0])
	assert.Equal(t,
		`987-654-321;<img src="b.jpg">;Anna Lee;Anna Lee;CS32-1-Fall-2013`,
		lines[1])
}

func TestMergeImportsFoldsConsecutiveDuplicates(t *testing.T) {
	in := strings.NewReader(
		`123-456-789;<img src="a.jpg">;John Smith;John Smith;TagA` + "\n" +
			`123-456-789;<img src="a.jpg">;John Smith;John R Smith;TagB` + "\n")
	var out bytes.Buffer

	require.NoError(t, MergeImports(store.Records{}, in, &out))

	assert.Equal(t,
		`123-456-789;<img src="a.jpg">;John Smith;John Smith;TagA John R Smith`+"\n",
		out.String())
}

func TestMergeImportsEmptyInput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, MergeImports(store.Records{}, strings.NewReader(""), &out))
	assert.Empty(t, out.String())
}
