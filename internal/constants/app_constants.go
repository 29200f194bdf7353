package constants

const (
	// Application-level constants
	DefaultParserVer = "native-ocr-1.0" // 当前解析流水线版本标识

	// Extraction acceptance thresholds
	NativeTextMinChars = 100 // 原生文本层最少字符数（需含字母才算有效）
	OCRTextMinChars    = 50  // OCR文本最少非空白字符数

	// Section header length gate
	MaxHeaderLineChars = 50 // 超过该长度的行不视为区段标题
)
