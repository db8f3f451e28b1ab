// Package app contains shared application-layer constants used across the
// pinbook client screens.
//
// All Msg* constants are human-readable message strings shown in the UI to
// describe the outcome of an operation. Keeping them in one place ensures
// consistent wording throughout the app.
package app

const (
	// MsgNameRequired is shown when a place or draft is saved without a
	// name.
	MsgNameRequired = "名前を入力してください"

	// MsgCoordinatesOutOfRange is shown when a latitude or longitude falls
	// outside the valid range.
	MsgCoordinatesOutOfRange = "座標が範囲外です"

	// MsgTabNameRequired is shown when a tab is created or renamed with an
	// empty name.
	MsgTabNameRequired = "タブ名を入力してください"

	// MsgTabLimitReached is shown when a sixth custom tab is attempted.
	MsgTabLimitReached = "カスタムタブは5個までです"

	// MsgBuiltinTabImmutable is shown when a built-in tab is renamed or
	// deleted.
	MsgBuiltinTabImmutable = "標準タブは変更できません"

	// MsgPlaceNotFound is shown when an operation targets a place that no
	// longer exists.
	MsgPlaceNotFound = "ピンが見つかりません"

	// MsgLocationPermissionDenied is shown when the platform refuses access
	// to the device position.
	MsgLocationPermissionDenied = "位置情報の利用が許可されていません"

	// MsgLocationUnavailable is shown when the position cannot be
	// determined.
	MsgLocationUnavailable = "現在地を取得できませんでした"

	// MsgLocationTimeout is shown when the position lookup exceeds its time
	// budget.
	MsgLocationTimeout = "現在地の取得がタイムアウトしました"

	// MsgLocationUnknown is shown for location failures outside the known
	// taxonomy.
	MsgLocationUnknown = "位置情報の取得で不明なエラーが発生しました"

	// MsgSpeechUnsupported is shown when voice input is started on a
	// platform without a recognizer.
	MsgSpeechUnsupported = "この環境では音声入力を利用できません"

	// MsgSpeechPermissionDenied is shown when microphone access is refused.
	MsgSpeechPermissionDenied = "マイクの利用が許可されていません"

	// MsgNoSpeechDetected is shown when a recording produced no transcript.
	MsgNoSpeechDetected = "音声が検出されませんでした"
)
