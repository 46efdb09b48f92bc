package mongo

import (
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// dupOnIndex reports whether err is a duplicate-key error on the named unique
// index. Mongo surfaces the violated index name inside the write error
// message, so a substring check is how the culprit field is identified.
func dupOnIndex(err error, index string) bool {
	if !mongo.IsDuplicateKeyError(err) {
		return false
	}
	return strings.Contains(err.Error(), index)
}
