// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// 実験設定の検証エラーと数値計算の警告を構造化された形で扱います。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("reparam-Warning: %v\n", w)
	}
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// これにより、DegenerateSampleWarningなどの警告の処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// Warn は警告を発生させます。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// DegenerateSampleWarning は全サンプルが退化した重みを持つ場合に発生する警告です。
// 例えば、スコア関数推定器で全てのサンプルがθと一致した場合など。
type DegenerateSampleWarning struct {
	Estimator  string
	SampleSize int
	Message    string
}

func (w *DegenerateSampleWarning) Error() string {
	if w.Message != "" {
		return fmt.Sprintf("%s produced a degenerate estimate with %d samples: %s", w.Estimator, w.SampleSize, w.Message)
	}
	return fmt.Sprintf("%s produced a degenerate estimate with %d samples. The result follows naive floating-point behavior.", w.Estimator, w.SampleSize)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *DegenerateSampleWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("estimator", w.Estimator).
		Int("sample_size", w.SampleSize).
		Str("message", w.Message).
		Str("type", "DegenerateSampleWarning")
}

// NewDegenerateSampleWarning は新しいDegenerateSampleWarningを作成します。
func NewDegenerateSampleWarning(estimator string, sampleSize int, message string) *DegenerateSampleWarning {
	return &DegenerateSampleWarning{Estimator: estimator, SampleSize: sampleSize, Message: message}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// InvalidConfigurationError は実験設定の検証に失敗した場合のエラーです。
// 空のサンプルサイズ列や非正の繰り返し回数などを表します。
type InvalidConfigurationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("reparam: invalid configuration: parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidConfigurationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "InvalidConfigurationError")
}

// NewInvalidConfigurationError は新しいInvalidConfigurationErrorを作成し、スタックトレースを付与します。
func NewInvalidConfigurationError(param, reason string, value interface{}) error {
	err := &InvalidConfigurationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
// 例えば、推定器に空のサンプル列を渡した場合など。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("reparam: %s: %s", e.Op, e.Message)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValueError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("message", e.Message).
		Str("type", "ValueError")
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// NumericalInstabilityError は数値計算が不安定になった場合のエラーです。
// NaN、Inf、オーバーフロー、アンダーフローなどを検出します。
type NumericalInstabilityError struct {
	Operation string    // 発生した操作（例: "score_function", "variance_aggregation"）
	Values    []float64 // 問題のある値
	Trial     int       // 発生した試行番号
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("reparam: numerical instability detected in %s at trial %d. Values: [%s]",
		e.Operation, e.Trial, valStr)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NumericalInstabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Floats64("values", e.Values).
		Int("trial", e.Trial).
		Str("type", "NumericalInstabilityError")
}

// NewNumericalInstabilityError は新しいNumericalInstabilityErrorを作成し、スタックトレースを付与します。
func NewNumericalInstabilityError(operation string, values []float64, trial int) error {
	err := &NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Trial:     trial,
	}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptySamples は空のサンプル列が渡された場合のエラーです。
	ErrEmptySamples = New("empty samples")

	// ErrNilObjective は目的関数が指定されていない場合のエラーです。
	ErrNilObjective = New("nil objective")
)
