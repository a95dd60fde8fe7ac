package video

import "errors"

var ErrClassificationNotFound = errors.New("no classification found for this URL")
