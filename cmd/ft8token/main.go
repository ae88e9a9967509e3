package main

/*------------------------------------------------------------------
 *
 * Purpose:   	Command line front end for the FT8 token classifier.
 *
 *---------------------------------------------------------------*/

import (
	ft8token "github.com/doismellburning/ft8token/src"
)

func main() {
	ft8token.Ft8TokenMain()
}
