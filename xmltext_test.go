package main

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseXML(t *testing.T, s string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(s))
	require.NotNil(t, doc.Root())
	return doc.Root()
}

func TestNormWS(t *testing.T) {
	assert.Equal(t, "const GLfloat *params", normWS("  const \n GLfloat\t *params "))
	assert.Equal(t, "", normWS("   \n\t "))
}

func TestFlattenText(t *testing.T) {
	root := parseXML(t, `<proto>void <name>glFoo</name> end</proto>`)
	assert.Equal(t, "void glFoo end", flattenText(root))

	nested := parseXML(t, `<para>uses <emphasis>nested <code>markup</code></emphasis>!</para>`)
	assert.Equal(t, "uses nested markup!", flattenText(nested))
}

func TestStripWord(t *testing.T) {
	assert.Equal(t, "GLint", stripWord("GLint x", "x"))
	assert.Equal(t, "const GLfloat *", stripWord("const GLfloat *params", "params"))
	// Whole-word only: "buffer" must not eat part of "framebuffer".
	assert.Equal(t, "GLuint framebuffer", stripWord("GLuint framebuffer buffer", "buffer"))
	assert.Equal(t, "void", stripWord("void glFoo", "glFoo"))
}

func TestStripCallConv(t *testing.T) {
	assert.Equal(t, "void", stripCallConv("void APIENTRY"))
	assert.Equal(t, "const GLubyte *", stripCallConv("const GLubyte * GLAPIENTRY"))
}

func TestLocalNameLookupAcceptsNamespacedAndBareTags(t *testing.T) {
	namespaced := parseXML(t, `<db:refentry xmlns:db="http://docbook.org/ns/docbook">
		<db:refnamediv><db:refpurpose>namespaced purpose</db:refpurpose></db:refnamediv>
	</db:refentry>`)
	bare := parseXML(t, `<refentry>
		<refnamediv><refpurpose>bare purpose</refpurpose></refnamediv>
	</refentry>`)

	assert.Equal(t, "namespaced purpose", flattenText(findFirst(namespaced, "refpurpose")))
	assert.Equal(t, "bare purpose", flattenText(findFirst(bare, "refpurpose")))
	assert.Nil(t, findFirst(bare, "funcprototype"))
}

func TestFindAllDocumentOrder(t *testing.T) {
	root := parseXML(t, `<r><a><p>1</p></a><p>2</p><b><c><p>3</p></c></b></r>`)
	var got []string
	for _, el := range findAll(root, "p") {
		got = append(got, flattenText(el))
	}
	assert.Equal(t, []string{"1", "2", "3"}, got)
}

func TestChildElemDirectChildrenOnly(t *testing.T) {
	root := parseXML(t, `<entry><wrap><term>deep</term></wrap><term>shallow</term></entry>`)
	assert.Equal(t, "shallow", flattenText(childElem(root, "term")))
	assert.Len(t, childElems(root, "term"), 1)
}

func TestLenientRecover(t *testing.T) {
	in := `<!DOCTYPE refentry PUBLIC "-//OASIS//DTD DocBook XML V4.3//EN"
    "http://www.oasis-open.org/docbook/xml/4.3/docbookx.dtd" [
    <!ENTITY nbsp "&#160;">
]>
<para>a&nbsp;b &amp; c &lt;d&gt; &times;</para>`
	out := lenientRecover(in)
	assert.NotContains(t, out, "DOCTYPE")
	assert.NotContains(t, out, "&nbsp;")
	assert.NotContains(t, out, "&times;")
	assert.Contains(t, out, "&amp;")
	assert.Contains(t, out, "&lt;d&gt;")
	assert.Contains(t, out, "ab")

	// Already well-formed text passes through untouched.
	assert.Equal(t, "<para>plain</para>", lenientRecover("<para>plain</para>"))
}
