// Package calloutmath 为 callout 中的数学公式计算 Live Preview 装饰
//
// 编辑器渲染引用块（blockquote）里的 $$...$$ 块公式时，会把每行开头的
// "> " 标记一起交给公式渲染器，导致公式出错。这个包分析文档中的引用结构，
// 计算出替换、部件、标记和行装饰，让宿主编辑器在 callout 中正确显示公式。
//
// 核心功能：
//   - 逐行扫描引用标记，建立引用区间索引
//   - 去掉块公式源码中的引用标记（修正结果是幂等的）
//   - 计算 callout 中公式的替换 / 部件装饰
//   - 隐藏或显示引用标记，取消跨行公式的样式
//   - 将字节偏移转换为 UTF-16 偏移
//
// 主要 API：
//   - Render(): 一次性计算文档的装饰
//   - NewState() / Workspace: 按修订版本维护文档状态
//
// 示例：
//
//	// 简单计算
//	decorations := calloutmath.Render(markdown)
//
//	// 带选区的视图
//	state := calloutmath.NewState(markdown)
//	decorations = state.Decorations(
//	    calloutmath.WithSelection(calloutmath.Range{From: 12, To: 12}),
//	    calloutmath.WithBorders(true),
//	)
//	for _, d := range decorations {
//	    switch d.Kind {
//	    case calloutmath.DecorationReplace:
//	        // 用 d.Math 替换 [d.From, d.To)
//	    case calloutmath.DecorationWidget:
//	        // 在 d.From 处插入 d.Math
//	    }
//	}
package calloutmath

// Render 计算 Markdown 文档的装饰
//
// 参数：
//   - text: 文档全文
//   - opts: 视图状态和配置，默认是获得焦点、无选区的 Live Preview 视图
//
// 返回：
//   - []Decoration: 按位置排序的装饰列表，偏移为字节偏移
func Render(text string, opts ...Option) []Decoration {
	return NewState(text).Decorations(opts...)
}

// RenderUTF16 与 Render 相同，但返回的偏移以 UTF-16 code units 计
func RenderUTF16(text string, opts ...Option) []Decoration {
	return ToUTF16(text, Render(text, opts...))
}

// Correct 去掉 level 层引用标记，返回修正后的公式源码
//
// 已修正的源码原样返回。
func Correct(level int, src MathSource) MathSource {
	return NewQuoteInfo(level, false).Correct(src)
}
