package browser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html lang="ko">
<head>
  <title>NEIS Helper - 나이스 업무 도우미</title>
  <script>document.title = "loaded";</script>
  <script src="/_next/static/chunks/main.js"></script>
  <script type="application/ld+json">{"@type": "WebSite"}</script>
</head>
<body>
  <nav><a href="/checklist">체크리스트</a> <a href="/calendar">학사일정</a></nav>
  <main>
    <h1>이번 달 할 일</h1>
    <p>3월은 <strong>학년초</strong> 업무가 몰리는 시기입니다.</p>
    <ul>
      <li>권한 부여</li>
      <li>학적 관리 <a href="guides/enrollment">가이드 보기</a></li>
    </ul>
    <p onclick="alert(1)">문의: <a href="https://help.neis.go.kr">NEIS 도움센터</a>
      또는 <a href="tel:1600-8400">1600-8400</a></p>
    <a href="#top">맨 위로</a>
    <a href="javascript:void(0)">무시</a>
    <pre>학생부 > 기재요령</pre>
  </main>
</body>
</html>`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument("https://neis-helper.pages.dev/", []byte(samplePage), NewSanitizer())
	require.NoError(t, err)

	assert.Equal(t, "NEIS Helper - 나이스 업무 도우미", doc.Title)
	assert.Equal(t, []string{`document.title = "loaded";`}, doc.Scripts)

	links := linkBlocks(doc)
	require.Len(t, links, 5)
	assert.Equal(t, "https://neis-helper.pages.dev/checklist", links[0].Href)
	assert.Equal(t, "체크리스트", links[0].Text)
	assert.Equal(t, "https://neis-helper.pages.dev/guides/enrollment", links[2].Href)
	assert.Equal(t, "https://help.neis.go.kr", links[3].Href)
	assert.Equal(t, "tel:1600-8400", links[4].Href)

	assert.Contains(t, doc.Blocks, Block{Kind: BlockHeading, Level: 1, Text: "이번 달 할 일"})
	assert.Contains(t, doc.Blocks, Block{Kind: BlockText, Text: "3월은 학년초 업무가 몰리는 시기입니다."})
	assert.Contains(t, doc.Blocks, Block{Kind: BlockListItem, Text: "권한 부여"})
	assert.Contains(t, doc.Blocks, Block{Kind: BlockListItem, Text: "학적 관리"})
	assert.Contains(t, doc.Blocks, Block{Kind: BlockPreformatted, Text: "학생부 > 기재요령"})
}

func TestParseDocumentTitleFallback(t *testing.T) {
	doc, err := ParseDocument("https://neis-helper.pages.dev/faq", []byte(`<p>FAQ</p>`), NewSanitizer())
	require.NoError(t, err)

	assert.Equal(t, "neis-helper.pages.dev", doc.Title)
	assert.Equal(t, []Block{{Kind: BlockText, Text: "FAQ"}}, doc.Blocks)
	assert.Empty(t, doc.Scripts)
}

func TestParseDocumentInvalidURL(t *testing.T) {
	_, err := ParseDocument("://bad", []byte(`<p>x</p>`), NewSanitizer())
	assert.Error(t, err)
}

func TestErrorDocument(t *testing.T) {
	cause := errors.New("dial tcp: i/o timeout")
	doc := ErrorDocument("https://neis-helper.pages.dev", cause)

	assert.ErrorIs(t, doc.Err, cause)
	assert.Empty(t, linkBlocks(doc))
	assert.NotEmpty(t, doc.Blocks)
}

func linkBlocks(doc *Document) []Block {
	var links []Block
	for _, b := range doc.Blocks {
		if b.Kind == BlockLink {
			links = append(links, b)
		}
	}
	return links
}
