package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"name":    "名前",
	"email":   "メールアドレス",
	"rating":  "評価",
	"word_id": "単語ID",
	"answer":  "回答",
	"correct": "正解数",
	"total":   "問題数",
	"xp":      "経験値",
}

// fieldLabel は json タグ名を表示用の日本語名にします
func fieldLabel(field string) string {
	if label, ok := fieldNameTranslations[field]; ok {
		return label
	}
	return field
}

func init() {
	// バリデータのインスタンスを生成
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// --- ここからが日本語化の処理 ---

	// 日本語のロケールとトランスレータを設定
	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	// バリデータに日本語の翻訳を登録
	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 個別のエラーメッセージを上書き ({0}=項目名, {1}=パラメータ)
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(tag, fieldLabel(fe.Field()), fe.Param())
			if err != nil {
				return fe.Error()
			}
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("email", "{0}は有効なメールアドレス形式ではありません。")
	registerTranslation("min", "{0}は{1}文字以上で入力してください。")
	registerTranslation("max", "{0}は{1}文字以下で入力してください。")
	registerTranslation("oneof", "{0}は次のいずれかで指定してください: {1}")
	registerTranslation("gte", "{0}は{1}以上で指定してください。")
	registerTranslation("gt", "{0}は{1}より大きい値で指定してください。")
	registerTranslation("lte", "{0}は{1}以下で指定してください。")
}
