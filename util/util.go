package util

// PrimaryImage returns the largest image URL, or "" when the record carries
// no images. Image lists are ordered largest to smallest.
func PrimaryImage(urls []string) string {
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}

// PrimaryArtist returns the first artist URI, which is treated as the
// album's owner everywhere downstream.
func PrimaryArtist(uris []string) string {
	if len(uris) == 0 {
		return ""
	}
	return uris[0]
}
