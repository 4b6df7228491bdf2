package metric

import "strconv"

// Tag constants
const (
	TagEnv                       = "env"
	TagService                   = "service"
	TagPath                      = "path"
	TagMethod                    = "method"
	TagHttpStatusCode            = "http_status_code"
	TagExternalService           = "external_service"
	TagExternalServicePath       = "external_service_path"
	TagExternalServiceMethod     = "external_service_method"
	TagExternalServiceStatusCode = "external_service_status_code"
	TagUserContext               = "user_context"
	TagModelName                 = "model_name"
	TagModelVersion              = "model_version"
	TagErrorCode                 = "error_code"
)

type Tag struct {
	Name  string
	Value string
}

func NewTag(name, value string) Tag {
	return Tag{
		Name:  name,
		Value: value,
	}
}

// BuildTag builds a tag from the given name and value
func BuildTag(tags ...Tag) []string {
	allTags := make([]string, 0)
	for _, tag := range tags {
		allTags = append(allTags, TagAsString(tag.Name, tag.Value))
	}
	return allTags
}

func TagAsString(name string, value string) string {
	return name + ":" + value
}

func UpdateTags(tags *[]string, newTags ...Tag) {
	for _, tag := range newTags {
		*tags = append(*tags, TagAsString(tag.Name, tag.Value))
	}
}

func BuildExternalHTTPServiceLatencyTags(service, path, method string, statusCode int) []string {
	return BuildTag(
		NewTag(TagExternalService, service),
		NewTag(TagExternalServicePath, path),
		NewTag(TagExternalServiceMethod, method),
		NewTag(TagExternalServiceStatusCode, strconv.Itoa(statusCode)),
	)
}

func BuildExternalHTTPServiceCountTags(service, path, method string, statusCode int) []string {
	return BuildTag(
		NewTag(TagExternalService, service),
		NewTag(TagExternalServicePath, path),
		NewTag(TagExternalServiceMethod, method),
		NewTag(TagExternalServiceStatusCode, strconv.Itoa(statusCode)),
	)
}
