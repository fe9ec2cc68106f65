package schema

import (
	"github.com/signadot/tagline/parse"
)

// MetaName is the registered name of the schema which schema documents
// themselves satisfy.
const MetaName = "tagline.schema"

const metaSource = "# optional: { required=tag optional=tag types=tag allowUnknown=boolean }"

func init() {
	if err := Register(New(MetaName, parse.MustParse(metaSource))); err != nil {
		panic(err)
	}
}
