package eqpaste

// KeystrokeKind represents the type of a keystroke.
type KeystrokeKind string

const (
	// KeystrokeWrite types a string character by character.
	KeystrokeWrite KeystrokeKind = "write"
	// KeystrokePress presses and releases a single key.
	KeystrokePress KeystrokeKind = "press"
	// KeystrokeHotkey presses a key combination.
	KeystrokeHotkey KeystrokeKind = "hotkey"
)

// Keystroke 一次键盘操作
type Keystroke struct {
	Kind KeystrokeKind `json:"kind"`
	Text string        `json:"text,omitempty"`
	Keys []string      `json:"keys,omitempty"`
}

// ToDict 将 Keystroke 转换为 map
func (k Keystroke) ToDict() map[string]interface{} {
	result := map[string]interface{}{
		"kind": string(k.Kind),
	}
	if k.Text != "" {
		result["text"] = k.Text
	}
	if len(k.Keys) > 0 {
		result["keys"] = k.Keys
	}
	return result
}

func write(text string) Keystroke { return Keystroke{Kind: KeystrokeWrite, Text: text} }
func press(key string) Keystroke  { return Keystroke{Kind: KeystrokePress, Keys: []string{key}} }

// KeyLayout 目标编辑器的按键约定
type KeyLayout struct {
	OpenEquation  []Keystroke // 打开公式编辑器
	CloseEquation []Keystroke // 离开公式编辑器
	ActivateKey   string      // 命令后的激活键
	ExitKey       string      // 离开嵌套结构的键
}

// GoogleDocsLayout 返回 Google Docs 公式编辑器的按键约定
//
// Alt+I, E 插入公式；命令后按空格激活；右方向键离开分母、下标、上标和公式。
func GoogleDocsLayout() KeyLayout {
	return KeyLayout{
		OpenEquation: []Keystroke{
			{Kind: KeystrokeHotkey, Keys: []string{"alt", "i"}},
			press("e"),
		},
		CloseEquation: []Keystroke{press("right")},
		ActivateKey:   "space",
		ExitKey:       "right",
	}
}

// KeystrokeSink 将动作转换为按键序列
//
// Send 为 nil 时只记录到 Keystrokes；否则每个按键立即交给 Send
// （例如真正的键盘事件注入），同时也会记录。
type KeystrokeSink struct {
	Layout     KeyLayout
	Send       func(Keystroke) error
	Keystrokes []Keystroke
}

var _ EquationSink = (*KeystrokeSink)(nil)

// NewKeystrokeSink 创建使用 Google Docs 按键约定的 KeystrokeSink
func NewKeystrokeSink(send func(Keystroke) error) *KeystrokeSink {
	return &KeystrokeSink{
		Layout: GoogleDocsLayout(),
		Send:   send,
	}
}

func (s *KeystrokeSink) emit(keys ...Keystroke) error {
	for _, k := range keys {
		s.Keystrokes = append(s.Keystrokes, k)
		if s.Send != nil {
			if err := s.Send(k); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *KeystrokeSink) InsertText(text string) error {
	if text == "" {
		return nil
	}
	return s.emit(write(text))
}

func (s *KeystrokeSink) InsertCommand(name string) error {
	return s.emit(write(`\`+name), press(s.Layout.ActivateKey))
}

func (s *KeystrokeSink) ActivateFraction() error {
	return s.emit(write(`\frac`), press(s.Layout.ActivateKey))
}

func (s *KeystrokeSink) ExitGroup() error {
	return s.emit(press(s.Layout.ExitKey))
}

func (s *KeystrokeSink) EnterSubscript() error {
	return s.emit(write("_"))
}

func (s *KeystrokeSink) EnterSuperscript() error {
	return s.emit(write("^"))
}

func (s *KeystrokeSink) BeginEquation() error {
	return s.emit(s.Layout.OpenEquation...)
}

func (s *KeystrokeSink) EndEquation() error {
	return s.emit(s.Layout.CloseEquation...)
}
