package openai

import (
	"fmt"
	"strings"

	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
)

// maxContextChars caps the rendered retrieval context passed to the generator.
const maxContextChars = 2000

// snippetChars caps each per-song excerpt in comparison contexts.
const snippetChars = 400

const routePromptTemplate = `根据用户的问题，将其分类为以下几种类型之一：

1. 'list' - 用户想获取歌曲列表或推荐，只需要歌名
   例如：推荐几首台湾独立音乐、有什么乐团歌曲、给我3首魏如萱的歌

2. 'direct' - 不需要使用歌曲知识库的常识性问题
   例如：介绍一下张悬、为什么歌词中副歌一般会出现好几次

3. 'compare' - 比较类问题
   例如：比较一下焦安溥在张悬和安溥时期的作词风格、比较一下魏如萱和艾怡良的作品

4. 'general' - 其他需要使用歌曲知识库的一般性问题
   例如：《玫瑰色的你》的写作背景是什么、张悬的歌词写作风格是怎样的

请只返回分类结果：list或general或compare或direct

用户问题：%s

分类结果：`

const rewritePromptTemplate = `你是一个智能查询分析助手。请分析用户的查询，判断是否需要重写以提高歌曲检索效果。

原始查询：%s

分析规则：
1. 具体明确的查询（直接返回原查询）：包含具体歌手、专辑或歌曲名称。
2. 模糊不清的查询（需要重写）：过于宽泛、缺乏具体信息或口语化表达。

重写原则：
- 保持原意不变
- 增加音乐、歌词相关术语
- 保持简洁性

请输出最终查询（如果不需要重写就返回原查询）：`

const decomposePromptTemplate = `你是一个查询结构化助手。请将用户的查询拆解为一个或多个自然语言子查询。
这些子查询将直接用于检索，请保持描述完整、语义连贯。

如果用户的查询只包含一个意图，则只返回一个子查询。
如果用户的查询包含多个歌手、多个年份、多张专辑或者多个地区等条件，请分别拆成多个子查询。

要求：
- 每个子查询必须是自然语言描述（不要关键词）
- 不要解释
- 输出格式：每行一个子查询（不要 JSON）

用户查询：%s

子查询：`

const answerPromptTemplate = `你是一名专业的华语独立音乐歌词鉴赏助手。请根据以下歌曲歌词信息回答用户的问题。

用户问题：%s

歌曲歌词信息：
%s

请提供详细、实用的回答。如果信息不足，请如实说明。

回答：`

const directPromptTemplate = `你是一名专业的华语独立音乐歌词鉴赏助手。请回答用户的问题。

用户问题：%s

请提供详细、实用的回答。如果信息不足，请如实说明。

回答：`

const comparePromptTemplate = `你是一名专业的华语独立音乐歌词鉴赏助手。请根据以下歌曲歌词信息回答用户的问题。

用户问题：%s

下面是多个检索结果分组，每一组代表一个对比对象。
（例如不同歌手、不同专辑、不同风格，通过文档内容结合用户问题自行判断）
%s

请你：
1. 给出一个结构化、清晰、有依据的比较
2. 引用文档中的具体内容支撑观点
`

// buildContext renders parent documents into a context block, newest-first in
// input order, truncated once the character budget is exhausted.
func buildContext(docs []*core.ParentDocument) string {
	if len(docs) == 0 {
		return "暂无相关歌曲信息。"
	}

	var parts []string
	length := 0

	for i, doc := range docs {
		header := fmt.Sprintf("「歌曲%d」%s %s %s %s %s %s",
			i+1, doc.Meta.Title, doc.Meta.Artist, doc.Meta.Album,
			doc.Meta.Year, doc.Meta.Region, doc.Meta.Type)
		text := header + "\n" + doc.Content + "\n"

		if length+len(text) > maxContextChars {
			break
		}
		parts = append(parts, text)
		length += len(text)
	}

	return "\n" + strings.Repeat("=", 50) + "\n" + strings.Join(parts, "\n")
}

// buildComparisonContext renders per-subject document groups into numbered
// blocks with short excerpts, so the generator can tell which hits support
// which side of the comparison.
func buildComparisonContext(groups [][]*core.ParentDocument) string {
	var b strings.Builder

	for i, group := range groups {
		fmt.Fprintf(&b, "第%d组歌曲信息\n", i+1)
		for _, doc := range group {
			snippet := strings.ReplaceAll(doc.Content, "\n", " ")
			if runes := []rune(snippet); len(runes) > snippetChars {
				snippet = string(runes[:snippetChars])
			}
			fmt.Fprintf(&b, "- 《%s》 by %s：%s...\n", doc.Meta.Title, doc.Meta.Artist, snippet)
		}
		b.WriteString("\n")
	}

	return b.String()
}
