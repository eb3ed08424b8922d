// Package eqpaste 将混合纯文本/LaTeX 的剪贴板内容转换为公式编辑器的编辑动作序列
//
// 适用于从 ChatGPT 等工具复制的带公式文本，驱动 Google Docs 等编辑器的公式输入模式。
//
// 核心功能：
//   - 识别 \[...\]、\(...\)、$$...$$、$...$ 四种公式定界符
//   - 递归拆解分数、上下标、花括号组和反斜杠命令
//   - 畸形输入本地降级，从不失败
//   - 基于 context 的协作式取消
//
// 主要 API：
//   - Translate(): 返回完整动作序列
//   - Dispatch(): 将动作逐个交给 Sink
//   - Runner: 单任务运行器（触发、取消）
//
// 示例：
//
//	actions, err := eqpaste.Translate(ctx, `The energy is \(E=mc^2\).`)
//
//	sink := eqpaste.NewKeystrokeSink(nil)
//	err = eqpaste.Dispatch(ctx, clipboardText, sink, eqpaste.WithPlainText(false))
//	for _, k := range sink.Keystrokes {
//	    // 注入键盘事件
//	}
package eqpaste

import "context"

// Paste 将剪贴板内容翻译并交给 Sink
//
// 参数：
//   - ctx: 上下文，取消后停止输出
//   - content: 原始剪贴板文本
//   - sink: 动作接收方
//   - includePlainText: 是否输出公式之外的文本
//
// 返回：
//   - error: ctx 取消或 Sink 执行失败时的错误；畸形输入不会产生错误
func Paste(ctx context.Context, content string, sink Sink, includePlainText bool) error {
	return Dispatch(ctx, content, sink, WithPlainText(includePlainText))
}
