package legacy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelter-dogs/internal/domain/dogs/profile"
)

const dogPage = `<html><head>
<style>.t { color: red }</style>
<script>var sexo = "Sexo: nope";</script>
</head><body>
<div class="t-menu">Home</div>
<h1>Jóia</h1>
<div class="t-text">
-Sexo: Feminino;<br>
-Idade: 3 anos;<br>
-Raça: Rafeiro &amp; Podengo;<br>
-Sociável com pessoas;-<br>
<br>
-História: Foi encontrada na rua — muito magra;
</div>
<p>Partilhar</p>
<p>Sexo: outro perro</p>
<img src="https://static.tildacdn.com/tild3131-aaaa/IMG_1.JPG">
<div style="background-image:url('https://optim.tildacdn.com/tild6330-3638-4539-b061-306333333230/-/resize/480x360/-/format/webp/IMG_5771.JPG.webp')"></div>
<img src="https://static.tildacdn.com/tild3131-aaaa/IMG_1.JPG">
<img src="https://static.tildacdn.com/tild9999/logo.svg">
</body></html>`

func TestHTMLToText_DropsScriptsAndBreaksBlocks(t *testing.T) {
	text, err := HTMLToText(strings.NewReader(dogPage))
	require.NoError(t, err)

	assert.NotContains(t, text, "nope")
	assert.NotContains(t, text, "color")
	assert.Contains(t, text, "\n-Sexo: Feminino;\n")
	assert.Contains(t, text, "Rafeiro & Podengo")
	assert.NotContains(t, text, "\n\n\n")
}

func TestExtractDescription(t *testing.T) {
	text, err := HTMLToText(strings.NewReader(dogPage))
	require.NoError(t, err)

	want := strings.Join([]string{
		"Sexo: Feminino",
		"Idade: 3 anos",
		"Raça: Rafeiro & Podengo",
		"Sociável com pessoas",
		"História: Foi encontrada na rua — muito magra",
	}, "\n")
	assert.Equal(t, want, ExtractDescription(text))
}

func TestExtractDescription_NoSexLine(t *testing.T) {
	assert.Equal(t, "", ExtractDescription("Home\nSobre nós\nContacto"))
}

func TestExtractDescription_StopsAtTagsMarker(t *testing.T) {
	got := ExtractDescription("- Sexo: Masculino;\nIdade: 1 ano\nTags: cães, adoção\nRaça: x")
	assert.Equal(t, "Sexo: Masculino\nIdade: 1 ano", got)
}

func TestExtractPhotoURLs(t *testing.T) {
	assert.Equal(t, []string{
		"https://static.tildacdn.com/tild3131-aaaa/IMG_1.JPG",
		"https://static.tildacdn.com/tild6330-3638-4539-b061-306333333230/IMG_5771.JPG",
	}, ExtractPhotoURLs(dogPage))
}

func TestSexFromDescription(t *testing.T) {
	assert.Equal(t, profile.SexMale, SexFromDescription("Sexo: Masculino"))
	assert.Equal(t, profile.SexFemale, SexFromDescription("Sexo: Feminino"))
	assert.Equal(t, profile.Sex(""), SexFromDescription("Idade: 2 anos"))
}
