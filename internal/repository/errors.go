package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")

	//unique制約違反（評価の二重登録など）
	ErrDuplicate = errors.New("duplicate")

	//直列化失敗・ロック待ちタイムアウト。呼び出し側でリトライ可
	ErrConflict = errors.New("transaction conflict")
)
