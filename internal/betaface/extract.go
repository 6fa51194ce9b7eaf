package betaface

import (
	"github.com/tidwall/gjson"
)

// field returns the value of key in obj. When the key is repeated the last
// occurrence wins, matching how JSON decoders into maps behave.
func field(obj gjson.Result, key string) gjson.Result {
	var last gjson.Result
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.Str == key {
			last = v
		}
		return true
	})
	return last
}

// Extract pulls the media id and face ids out of an upload response.
// Anything that does not look like {"media": {"media_uuid": ..., "faces": [...]}}
// yields zero faces instead of an error. Faces without a string face_uuid are skipped.
func Extract(resp UploadResponse) Identifiers {
	ids := Identifiers{FaceUUIDs: []string{}}

	if len(resp) == 0 || !gjson.ValidBytes(resp) {
		return ids
	}
	root := gjson.ParseBytes(resp)
	if !root.IsObject() {
		return ids
	}

	media := field(root, "media")
	if !media.IsObject() {
		return ids
	}

	if id := field(media, "media_uuid"); id.Type == gjson.String {
		ids.MediaUUID = id.Str
	}

	faces := field(media, "faces")
	if !faces.IsArray() {
		return ids
	}
	for _, face := range faces.Array() {
		if !face.IsObject() {
			continue
		}
		if id := field(face, "face_uuid"); id.Type == gjson.String && id.Str != "" {
			ids.FaceUUIDs = append(ids.FaceUUIDs, id.Str)
		}
	}

	return ids
}

// shapeProblem describes why Extract found no faces in a malformed response.
// It returns an empty string for a well-formed response, including one with an empty faces list.
func shapeProblem(resp UploadResponse) string {
	if len(resp) == 0 {
		return "empty response"
	}
	if !gjson.ValidBytes(resp) {
		return "response is not valid JSON"
	}
	root := gjson.ParseBytes(resp)
	if !root.IsObject() {
		return "response is not a JSON object"
	}
	media := field(root, "media")
	switch {
	case !media.Exists():
		return "response has no media section"
	case !media.IsObject():
		return "media section is not an object"
	}
	faces := field(media, "faces")
	switch {
	case !faces.Exists():
		return "media section has no faces list"
	case !faces.IsArray():
		return "faces is not a list"
	}
	return ""
}
